package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/pkg/math"
)

func TestUnitCubeWireframe(t *testing.T) {
	verts := UnitCubeWireframe()
	if len(verts) != BBoxWireframeVertexCount*3 {
		t.Fatalf("vertex floats: got %d, want %d", len(verts), BBoxWireframeVertexCount*3)
	}
	for i, v := range verts {
		if v != -1 && v != 1 {
			t.Errorf("component %d: got %f, want ±1", i, v)
		}
	}
}

func TestOrientedBoxWireframe(t *testing.T) {
	tr := math.FromScaleRotationTranslation(mgl32.Vec3{2, 3, 4}, mgl32.QuatIdent(), mgl32.Vec3{10, 0, 0})
	verts := OrientedBoxWireframe(tr.Mat4())

	minX, maxX := verts[0], verts[0]
	for i := 0; i < len(verts); i += 3 {
		if verts[i] < minX {
			minX = verts[i]
		}
		if verts[i] > maxX {
			maxX = verts[i]
		}
	}
	if minX != 8 || maxX != 12 {
		t.Errorf("X range: got [%f, %f], want [8, 12]", minX, maxX)
	}
}

func TestCollectGizmos(t *testing.T) {
	const cube = 3
	s := scene.New()
	red := mgl32.Vec4{1, 0, 0, 0.3}

	s.AddNode(scene.NodeDesc{Name: "hidden"})
	s.AddNode(scene.NodeDesc{Name: "other mesh", Visual: scene.NewVisual(cube+1, scene.TransparentMaterial(red))})
	shown := s.AddNode(scene.NodeDesc{
		Name:      "shown",
		Transform: math.FromTranslation(1, 2, 3),
		Visual:    scene.NewVisual(cube, scene.TransparentMaterial(red)),
	}).ID()

	gizmos := CollectGizmos(s, cube)
	if len(gizmos) != 1 {
		t.Fatalf("gizmos: got %d, want 1", len(gizmos))
	}
	if gizmos[0].Node != shown {
		t.Errorf("Node: got %v, want %v", gizmos[0].Node, shown)
	}
	if gizmos[0].Color != red {
		t.Errorf("Color: got %v, want %v", gizmos[0].Color, red)
	}
}
