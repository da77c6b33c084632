// Package game runs the headless frame loop: pose, proxy update, physics
// step and hit dispatch.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/boneproxy/internal/config"
	"github.com/Faultbox/boneproxy/internal/engine/debug"
	"github.com/Faultbox/boneproxy/internal/engine/physics"
	"github.com/Faultbox/boneproxy/internal/engine/renderer"
	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/internal/game/character"
	"github.com/Faultbox/boneproxy/internal/logger"
	"github.com/Faultbox/boneproxy/internal/rig"
	"github.com/Faultbox/boneproxy/pkg/math"
)

type actor struct {
	id   character.ID
	inst rig.Instance
}

// Simulation is the main simulation instance.
type Simulation struct {
	cfg        *config.Config
	scene      *scene.Scene
	world      *physics.World
	meshes     *renderer.MeshRegistry
	constants  renderer.ConstantData
	characters *character.Manager
	rig        *rig.Rig
	actors     []actor

	pose     *Swayer
	shooter  *Shooter
	recorder *Recorder

	frame uint64
	hits  int
	log   *zap.Logger
}

// New creates a simulation and spawns the configured characters.
func New(cfg *config.Config, r *rig.Rig) *Simulation {
	world := physics.NewWorld()
	meshes := renderer.NewMeshRegistry()

	sim := &Simulation{
		cfg:        cfg,
		scene:      scene.New(),
		world:      world,
		meshes:     meshes,
		constants:  renderer.NewConstantData(meshes),
		characters: character.NewManager(),
		rig:        r,
		pose:       NewSwayer(),
		shooter:    NewShooter(world, cfg.Combat),
		log:        logger.Named("game"),
	}
	sim.addGround()

	for i := range cfg.Simulation.Characters {
		placement := math.FromTranslation(float32(i)*cfg.Simulation.Spacing, 0, 0)
		sim.spawn(fmt.Sprintf("character_%d", i), placement, cfg.Debug.ShowCollisionBoxes)
	}

	sim.log.Info("simulation initialized",
		zap.String("rig", r.Name),
		zap.Int("bones", r.BoneCount()),
		zap.Int("characters", sim.characters.Count()),
		zap.Int("colliders", world.Colliders.Len()),
	)
	return sim
}

// addGround inserts a scenery collider that shots and bones never own.
func (sim *Simulation) addGround() {
	ground := physics.NewCuboid(50, 0.05, 50).
		Position(math.FromTranslation(0, -0.05, 0).Isometry()).
		Build()
	sim.world.Colliders.Insert(ground)
}

func (sim *Simulation) spawn(name string, placement math.Transform, showBoxes bool) {
	inst := sim.rig.Instantiate(sim.scene, name, placement)
	id := sim.characters.Spawn(sim.scene, sim.world, sim.constants, inst.Root, inst.SkinIndex)
	if showBoxes {
		sim.characters.Get(id).EnableCollisionBoxDisplay(sim.scene)
	}
	sim.pose.Track(inst, sim.rig)
	sim.actors = append(sim.actors, actor{id: id, inst: inst})
}

// SetRecorder records a collider snapshot after every frame.
func (sim *Simulation) SetRecorder(r *Recorder) {
	sim.recorder = r
}

// Scene returns the simulated scene.
func (sim *Simulation) Scene() *scene.Scene {
	return sim.scene
}

// World returns the physics world.
func (sim *Simulation) World() *physics.World {
	return sim.world
}

// Characters returns the character manager.
func (sim *Simulation) Characters() *character.Manager {
	return sim.characters
}

// Frames returns the number of completed frames.
func (sim *Simulation) Frames() uint64 {
	return sim.frame
}

// Hits returns the number of shots that struck a bone.
func (sim *Simulation) Hits() int {
	return sim.hits
}

// Shooter returns the shooter.
func (sim *Simulation) Shooter() *Shooter {
	return sim.shooter
}

func (sim *Simulation) frameSeconds() float64 {
	if d := sim.cfg.Simulation.FrameDuration(); d > 0 {
		return d.Seconds()
	}
	return 1.0 / 60
}

// Frame advances the simulation by one frame and returns the bone hits it
// produced.
func (sim *Simulation) Frame() ([]character.Hit, error) {
	// 1. Pose the skeletons
	sim.pose.Apply(sim.scene, float64(sim.frame)*sim.frameSeconds())

	// 2. Sync collision proxies with the pose
	sim.characters.UpdateAll(sim.scene, sim.world)

	// 3. Physics step resolves this frame's shots
	targets := make([]scene.NodeID, 0, len(sim.actors))
	for _, a := range sim.actors {
		targets = append(targets, a.inst.Root)
	}
	sim.shooter.Fire(sim.scene, sim.world, sim.frame, targets)
	events := sim.world.Step()

	// 4. Attribute hits to bones
	var hits []character.Hit
	for _, ev := range events {
		hit, ok := sim.characters.DispatchHit(sim.scene, ev.Hit.Collider)
		if !ok {
			sim.log.Debug("shot hit scenery",
				zap.Uint64("shot", ev.Tag),
				zap.Stringer("collider", ev.Hit.Collider),
			)
			continue
		}
		c := sim.characters.Get(hit.Character)
		sim.log.Info("bone hit",
			zap.Uint64("shot", ev.Tag),
			zap.String("character", c.Name()),
			zap.String("bone", sim.rig.Bones[hit.Bone].Name),
			zap.Float64("toi", ev.Hit.Toi),
		)
		hits = append(hits, hit)
	}
	sim.hits += len(hits)

	if sim.recorder != nil {
		if err := sim.recorder.Record(sim.world.Snapshot(sim.frame)); err != nil {
			return hits, err
		}
	}

	sim.frame++
	return hits, nil
}

// Run steps frames until frames is reached (0 means no limit) or ctx is
// cancelled. Paths received on reloads are loaded as the new rig between
// frames. A negative frames is an error.
func (sim *Simulation) Run(ctx context.Context, frames int, reloads <-chan string) error {
	if frames < 0 {
		return fmt.Errorf("frame limit must be >= 0, got %d", frames)
	}

	var tick <-chan time.Time
	if sim.cfg.Simulation.Realtime {
		if d := sim.cfg.Simulation.FrameDuration(); d > 0 {
			ticker := time.NewTicker(d)
			defer ticker.Stop()
			tick = ticker.C
		}
	}

	statsEvery := uint64(max(sim.cfg.Simulation.TickRate, 1))
	sim.log.Info("starting frame loop", zap.Int("frames", frames))

	limit := uint64(frames)
	for limit == 0 || sim.frame < limit {
		select {
		case <-ctx.Done():
			sim.log.Info("frame loop interrupted", zap.Uint64("frame", sim.frame))
			return nil
		case path, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			sim.reloadFrom(path)
			continue
		default:
		}

		if _, err := sim.Frame(); err != nil {
			return fmt.Errorf("frame %d: %w", sim.frame, err)
		}

		if sim.frame%statsEvery == 0 {
			sim.logStats()
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}
	}

	sim.log.Info("frame loop finished",
		zap.Uint64("frames", sim.frame),
		zap.Uint64("shots", sim.shooter.Shots()),
		zap.Int("hits", sim.hits),
	)
	return nil
}

func (sim *Simulation) logStats() {
	fields := []zap.Field{
		zap.Uint64("frame", sim.frame),
		zap.Int("colliders", sim.world.Colliders.Len()),
		zap.Int("hits", sim.hits),
	}
	if sim.cfg.Debug.DumpGizmos {
		fields = append(fields, zap.Int("gizmos", len(debug.CollectGizmos(sim.scene, sim.constants.CubeMeshIndex))))
	}
	sim.log.Debug("stats", fields...)
}

func (sim *Simulation) reloadFrom(path string) {
	r, err := rig.Load(path)
	if err != nil {
		sim.log.Warn("rig reload failed, keeping current rig", zap.String("path", path), zap.Error(err))
		return
	}
	sim.ReloadRig(r)
}

// ReloadRig respawns every character with r, keeping their placement and
// debug display state.
func (sim *Simulation) ReloadRig(r *rig.Rig) {
	old := sim.actors
	sim.actors = nil
	sim.rig = r

	for _, a := range old {
		c := sim.characters.Get(a.id)
		name := c.Name()
		showBoxes := c.IsDisplayingCollisionBoxes()
		placement, ok := sim.scene.GlobalTransform(a.inst.Root)
		if !ok {
			placement = math.Identity()
		}

		sim.characters.Despawn(sim.scene, sim.world, a.id)
		sim.pose.Untrack(a.inst)
		a.inst.Remove(sim.scene)

		sim.spawn(name, placement, showBoxes)
	}

	sim.log.Info("rig reloaded",
		zap.String("rig", r.Name),
		zap.Int("bones", r.BoneCount()),
		zap.Int("characters", len(sim.actors)),
	)
}

// ToggleCollisionBoxes flips debug box display on every character.
func (sim *Simulation) ToggleCollisionBoxes() {
	sim.characters.ToggleAll(sim.scene)
}

// Close releases the simulation's resources.
func (sim *Simulation) Close() error {
	sim.log.Info("closing simulation")
	sim.characters.Clear(sim.scene, sim.world)
	if sim.recorder != nil {
		return sim.recorder.Close()
	}
	return nil
}
