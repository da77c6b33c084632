package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialKind selects how a visual is shaded.
type MaterialKind uint8

const (
	MaterialUnlit       MaterialKind = iota // Flat color
	MaterialTransparent                     // Alpha blended color
)

// String returns a human-readable material kind.
func (k MaterialKind) String() string {
	switch k {
	case MaterialUnlit:
		return "Unlit"
	case MaterialTransparent:
		return "Transparent"
	default:
		return "Unknown"
	}
}

// Material describes the surface of a visual.
type Material struct {
	Kind               MaterialKind
	Color              mgl32.Vec4 // RGBA, 0..1
	PremultipliedAlpha bool
}

// TransparentMaterial returns an alpha blended material with straight alpha.
func TransparentMaterial(color mgl32.Vec4) Material {
	return Material{Kind: MaterialTransparent, Color: color}
}

// Visual attaches a mesh and material to a node.
type Visual struct {
	MeshIndex int
	Material  Material
}

// NewVisual creates a visual from a mesh index and material.
func NewVisual(meshIndex int, material Material) *Visual {
	return &Visual{MeshIndex: meshIndex, Material: material}
}
