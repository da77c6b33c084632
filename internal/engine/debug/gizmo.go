package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/boneproxy/internal/engine/scene"
)

// Gizmo is a colored wireframe for one visible node.
type Gizmo struct {
	Node     scene.NodeID
	Color    mgl32.Vec4
	Vertices []float32 // line list, [x, y, z] per vertex
}

// CollectGizmos returns a world-space wireframe for every node drawing
// meshIndex. Nodes without a visual are skipped.
func CollectGizmos(s *scene.Scene, meshIndex int) []Gizmo {
	var gizmos []Gizmo
	s.Nodes(func(n *scene.Node) bool {
		if n.Visual == nil || n.Visual.MeshIndex != meshIndex {
			return true
		}
		global, ok := s.GlobalTransform(n.ID())
		if !ok {
			return true
		}
		gizmos = append(gizmos, Gizmo{
			Node:     n.ID(),
			Color:    n.Visual.Material.Color,
			Vertices: OrientedBoxWireframe(global.Mat4()),
		})
		return true
	})
	return gizmos
}
