package character

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/boneproxy/internal/engine/physics"
	"github.com/Faultbox/boneproxy/internal/engine/scene"
)

const debugAlpha = 0.3

// hitColor marks the box of the most recently hit bone.
var hitColor = mgl32.Vec4{1, 0, 0, debugAlpha}

// ResolveHit returns the bone index owning collider h.
func (c *Character) ResolveHit(h physics.ColliderHandle) (int, bool) {
	for i, bh := range c.boxColliders {
		if bh == h {
			return i, true
		}
	}
	return 0, false
}

// HandleHit resolves h and paints the bone's debug box red.
// Hits on colliders this character does not own are ignored.
func (c *Character) HandleHit(s *scene.Scene, h physics.ColliderHandle) (int, bool) {
	bone, ok := c.ResolveHit(h)
	if !ok {
		return 0, false
	}
	if node, ok := s.Node(c.boxNodes[bone]); ok {
		node.Visual = scene.NewVisual(c.debugMesh, scene.TransparentMaterial(hitColor))
	}
	return bone, true
}

// IsDisplayingCollisionBoxes reports whether debug boxes are shown.
func (c *Character) IsDisplayingCollisionBoxes() bool {
	return c.displaying
}

// ToggleCollisionBoxDisplay flips debug box visibility.
func (c *Character) ToggleCollisionBoxDisplay(s *scene.Scene) {
	if c.displaying {
		c.DisableCollisionBoxDisplay(s)
	} else {
		c.EnableCollisionBoxDisplay(s)
	}
}

// EnableCollisionBoxDisplay gives every box node a translucent cube in a
// fresh random color. Calling it again picks new colors.
func (c *Character) EnableCollisionBoxDisplay(s *scene.Scene) {
	for _, id := range c.boxNodes {
		node, ok := s.Node(id)
		if !ok {
			continue
		}
		color := mgl32.Vec4{rand.Float32(), rand.Float32(), rand.Float32(), debugAlpha}
		node.Visual = scene.NewVisual(c.debugMesh, scene.TransparentMaterial(color))
	}
	c.displaying = true
}

// DisableCollisionBoxDisplay removes the visual from every box node.
func (c *Character) DisableCollisionBoxDisplay(s *scene.Scene) {
	for _, id := range c.boxNodes {
		if node, ok := s.Node(id); ok {
			node.Visual = nil
		}
	}
	c.displaying = false
}
