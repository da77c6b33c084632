// Package character keeps per-bone collision proxies in sync with skinned
// characters and maps physics hits back to bones.
//
// Every bone of a character's skin gets one cuboid collider and one debug
// scene node. Both are created together, in bone order, the first time the
// skeleton can be fully resolved, and afterwards only their poses change.
package character

import (
	"go.uber.org/zap"

	"github.com/Faultbox/boneproxy/internal/engine/physics"
	"github.com/Faultbox/boneproxy/internal/engine/renderer"
	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/internal/logger"
)

// CollisionGroupPlayerUnshootable marks colliders that shots must pass
// through. Bone colliders belong to every other group.
const CollisionGroupPlayerUnshootable physics.Group = 1 << 0

// boneGroups is the interaction filter given to every bone collider.
func boneGroups() physics.InteractionGroups {
	return physics.AllGroups().WithMemberships(^CollisionGroupPlayerUnshootable)
}

type proxyState uint8

const (
	proxiesUninitialized proxyState = iota
	proxiesInitialized
)

// Character owns the collision proxies of one skinned character.
type Character struct {
	name      string
	rootNode  scene.NodeID
	skinIndex int

	// Index-aligned with the skin's bones once initialized.
	boxNodes     []scene.NodeID
	boxColliders []physics.ColliderHandle

	debugMesh  int
	displaying bool

	state       proxyState
	skinMissing bool
	log         *zap.Logger
}

// New creates the character and runs a first Update, which allocates the
// proxies if the skin is already resolvable.
func New(s *scene.Scene, w *physics.World, cd renderer.ConstantData, root scene.NodeID, skinIndex int) *Character {
	name := root.String()
	if n, ok := s.Node(root); ok && n.Name != "" {
		name = n.Name
	}

	c := &Character{
		name:      name,
		rootNode:  root,
		skinIndex: skinIndex,
		debugMesh: cd.CubeMeshIndex,
		log: logger.Named("character").With(
			zap.String("name", name),
			zap.Int("skin", skinIndex),
		),
	}
	c.Update(s, w)
	return c
}

// Name returns the root node's name, or its id when unnamed.
func (c *Character) Name() string {
	return c.name
}

// RootNode returns the node that places the character in the world.
func (c *Character) RootNode() scene.NodeID {
	return c.rootNode
}

// SkinIndex returns the bound skin.
func (c *Character) SkinIndex() int {
	return c.skinIndex
}

// IsInitialized reports whether the proxies have been created.
func (c *Character) IsInitialized() bool {
	return c.state == proxiesInitialized
}

// ProxyCount returns the number of bone proxies (zero before initialization).
func (c *Character) ProxyCount() int {
	return len(c.boxColliders)
}

// BoxNodes returns a copy of the debug node ids in bone order.
func (c *Character) BoxNodes() []scene.NodeID {
	return append([]scene.NodeID(nil), c.boxNodes...)
}

// BoxColliders returns a copy of the collider handles in bone order.
func (c *Character) BoxColliders() []physics.ColliderHandle {
	return append([]physics.ColliderHandle(nil), c.boxColliders...)
}

// Destroy releases every node and collider owned by the character. The
// character returns to the uninitialized state and may be updated again.
func (c *Character) Destroy(s *scene.Scene, w *physics.World) {
	for _, id := range c.boxNodes {
		s.RemoveNode(id)
	}
	for _, h := range c.boxColliders {
		w.Colliders.Remove(h)
	}
	if len(c.boxColliders) > 0 {
		c.log.Debug("collision proxies released", zap.Int("bones", len(c.boxColliders)))
	}
	c.boxNodes = nil
	c.boxColliders = nil
	c.displaying = false
	c.state = proxiesUninitialized
}
