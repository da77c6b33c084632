package game

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/internal/rig"
	"github.com/Faultbox/boneproxy/pkg/math"
)

type swayBone struct {
	node  scene.NodeID
	rest  math.Transform
	phase float64
}

// Swayer drives bone local rotations with a sine wave so the skeleton moves
// without an animation system.
type Swayer struct {
	Amplitude float32 // Radians
	Frequency float64 // Hz
	Axis      mgl32.Vec3

	bones []swayBone
}

// NewSwayer creates a pose driver with a gentle default motion.
func NewSwayer() *Swayer {
	return &Swayer{
		Amplitude: mgl32.DegToRad(12),
		Frequency: 0.5,
		Axis:      mgl32.Vec3{1, 0, 0},
	}
}

// Track adds the bones of an instance, using the rig's local transforms as
// the rest pose.
func (sw *Swayer) Track(inst rig.Instance, r *rig.Rig) {
	for i, id := range inst.Bones {
		sw.bones = append(sw.bones, swayBone{
			node:  id,
			rest:  r.Bones[i].LocalTransform(),
			phase: float64(i) * 0.4,
		})
	}
}

// Untrack drops the bones of an instance.
func (sw *Swayer) Untrack(inst rig.Instance) {
	drop := make(map[scene.NodeID]struct{}, len(inst.Bones))
	for _, id := range inst.Bones {
		drop[id] = struct{}{}
	}
	kept := sw.bones[:0]
	for _, b := range sw.bones {
		if _, ok := drop[b.node]; !ok {
			kept = append(kept, b)
		}
	}
	sw.bones = kept
}

// Len returns the number of tracked bones.
func (sw *Swayer) Len() int {
	return len(sw.bones)
}

// Apply poses every tracked bone for simulated time t in seconds.
func (sw *Swayer) Apply(s *scene.Scene, t float64) {
	for _, b := range sw.bones {
		node, ok := s.Node(b.node)
		if !ok {
			continue
		}
		angle := sw.Amplitude * float32(gomath.Sin(2*gomath.Pi*sw.Frequency*t+b.phase))
		node.Transform = b.rest.Mul(math.FromRotation(mgl32.QuatRotate(angle, sw.Axis)))
	}
}
