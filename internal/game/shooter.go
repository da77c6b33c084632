package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boneproxy/internal/config"
	"github.com/Faultbox/boneproxy/internal/engine/physics"
	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/internal/game/character"
	"github.com/Faultbox/boneproxy/pkg/math"
)

const (
	shotStandoff  = 5.0 // Distance in front of the target
	shotAimHeight = 1.3
)

// Shooter stands in front of a target every few frames and fires along +Z.
// Its own body collider is unshootable, so shots start inside it and pass
// straight through.
type Shooter struct {
	interval int
	maxToi   float64
	body     physics.ColliderHandle
	shots    uint64
	next     int
}

// NewShooter creates a shooter and inserts its body into w.
func NewShooter(w *physics.World, cfg config.CombatConfig) *Shooter {
	body := physics.NewCuboid(0.3, 0.9, 0.3).
		CollisionGroups(physics.AllGroups().WithMemberships(character.CollisionGroupPlayerUnshootable)).
		Build()
	return &Shooter{
		interval: cfg.ShotInterval,
		maxToi:   cfg.Range,
		body:     w.Colliders.Insert(body),
	}
}

// Filter returns the groups a shot interacts with.
func (sh *Shooter) Filter() physics.InteractionGroups {
	return physics.AllGroups().WithFilter(^character.CollisionGroupPlayerUnshootable)
}

// Body returns the shooter's collider.
func (sh *Shooter) Body() physics.ColliderHandle {
	return sh.body
}

// Shots returns how many rays have been queued.
func (sh *Shooter) Shots() uint64 {
	return sh.shots
}

// Fire queues a ray at the next target when frame falls on the interval.
// Targets are character roots, cycled in order. The ray's tag is the shot
// number, starting at 1.
func (sh *Shooter) Fire(s *scene.Scene, w *physics.World, frame uint64, targets []scene.NodeID) bool {
	if sh.interval <= 0 || len(targets) == 0 || frame%uint64(sh.interval) != 0 {
		return false
	}

	target := targets[sh.next%len(targets)]
	sh.next++
	root, ok := s.GlobalTransform(target)
	if !ok {
		return false
	}

	aim := mgl64.Vec3{float64(root.Position.X()), float64(root.Position.Y()) + shotAimHeight, float64(root.Position.Z())}
	muzzle := aim.Sub(mgl64.Vec3{0, 0, shotStandoff})
	if body, ok := w.Colliders.Get(sh.body); ok {
		body.SetPosition(math.Isometry{Translation: muzzle, Rotation: mgl64.QuatIdent()})
	}

	sh.shots++
	w.QueueRay(sh.shots, physics.NewRay(muzzle, mgl64.Vec3{0, 0, 1}), sh.maxToi, sh.Filter())
	return true
}
