package character

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/boneproxy/internal/engine/physics"
	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/pkg/math"
)

// Update brings the bone proxies in line with the current pose.
//
// Until every bone resolves, nothing is allocated and Update retries on the
// next call. Once the proxies exist, later calls only rewrite node transforms
// and collider poses; the proxy set never grows or shrinks.
func (c *Character) Update(s *scene.Scene, w *physics.World) {
	rootGlobal, ok := s.GlobalTransform(c.rootNode)
	if !ok {
		rootGlobal = math.Identity()
	}

	skin, ok := s.Skin(c.skinIndex)
	if !ok {
		c.noteSkinMissing(true)
		return
	}
	skinNode, ok := s.FindSkinNode(c.skinIndex)
	if !ok {
		c.noteSkinMissing(true)
		return
	}
	c.noteSkinMissing(false)

	// Copy before touching the scene: allocation below adds nodes.
	bones := snapshotSkin(skin)

	switch c.state {
	case proxiesUninitialized:
		transforms := make([]math.Transform, bones.len())
		for i := range transforms {
			t, ok := resolveBone(s, bones.nodes[i], skinNode, bones.boxes[i], rootGlobal)
			if !ok {
				c.log.Debug("bone not resolvable yet, deferring proxies", zap.Int("bone", i))
				return
			}
			transforms[i] = t
		}
		c.allocate(s, w, transforms)
		for i, t := range transforms {
			c.sync(s, w, i, t)
		}

	case proxiesInitialized:
		c.checkAligned(bones.len())
		for i := range bones.len() {
			t, ok := resolveBone(s, bones.nodes[i], skinNode, bones.boxes[i], rootGlobal)
			if !ok {
				continue
			}
			c.sync(s, w, i, t)
		}
	}
}

// allocate creates one debug node and one cuboid collider per bone.
// The collider shape is fixed from the box scale at creation time.
func (c *Character) allocate(s *scene.Scene, w *physics.World, transforms []math.Transform) {
	nodes := make([]scene.NodeID, 0, len(transforms))
	colliders := make([]physics.ColliderHandle, 0, len(transforms))
	groups := boneGroups()

	for i, t := range transforms {
		node := s.AddNode(scene.NodeDesc{
			Name:      fmt.Sprintf("%s/box/%d", c.name, i),
			Transform: t,
		})
		nodes = append(nodes, node.ID())

		collider := physics.NewCuboid(float64(t.Scale[0]), float64(t.Scale[1]), float64(t.Scale[2])).
			CollisionGroups(groups).
			Position(t.Isometry()).
			Build()
		colliders = append(colliders, w.Colliders.Insert(collider))
	}

	c.boxNodes = nodes
	c.boxColliders = colliders
	c.state = proxiesInitialized
	c.log.Info("collision proxies created", zap.Int("bones", len(colliders)))

	// Display was switched on before the proxies existed.
	if c.displaying {
		c.EnableCollisionBoxDisplay(s)
	}
}

func (c *Character) sync(s *scene.Scene, w *physics.World, bone int, t math.Transform) {
	if node, ok := s.Node(c.boxNodes[bone]); ok {
		node.Transform = t
	}
	if collider, ok := w.Colliders.Get(c.boxColliders[bone]); ok {
		collider.SetPosition(t.Isometry())
	}
}

// checkAligned panics when the proxy lists no longer match each other or the
// skin. Both indicate a programming error, not a runtime condition.
func (c *Character) checkAligned(bones int) {
	if len(c.boxNodes) != len(c.boxColliders) {
		panic(fmt.Sprintf("character %s: %d box nodes but %d colliders",
			c.name, len(c.boxNodes), len(c.boxColliders)))
	}
	if len(c.boxColliders) != bones {
		panic(fmt.Sprintf("character %s: skin has %d bones but %d proxies exist",
			c.name, bones, len(c.boxColliders)))
	}
}

// noteSkinMissing logs only on transitions to keep per-frame noise down.
func (c *Character) noteSkinMissing(missing bool) {
	if missing == c.skinMissing {
		return
	}
	c.skinMissing = missing
	if missing {
		c.log.Warn("skin or skin node not found, skipping proxy update")
	} else {
		c.log.Debug("skin available again")
	}
}
