// Package renderer holds render-side data that gameplay code refers to by index.
// Drawing itself happens outside this module.
package renderer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/boneproxy/internal/engine/debug"
	"github.com/Faultbox/boneproxy/internal/logger"
)

// Mesh is a line-list mesh.
type Mesh struct {
	Name  string
	Lines []float32 // [x, y, z] per vertex
}

// MeshRegistry stores meshes by index.
type MeshRegistry struct {
	meshes []Mesh
}

// NewMeshRegistry creates an empty registry.
func NewMeshRegistry() *MeshRegistry {
	return &MeshRegistry{}
}

// Add registers a mesh and returns its index.
func (r *MeshRegistry) Add(m Mesh) int {
	r.meshes = append(r.meshes, m)
	return len(r.meshes) - 1
}

// Mesh returns the mesh at index.
func (r *MeshRegistry) Mesh(index int) (Mesh, bool) {
	if index < 0 || index >= len(r.meshes) {
		return Mesh{}, false
	}
	return r.meshes[index], true
}

// Len returns the number of meshes.
func (r *MeshRegistry) Len() int {
	return len(r.meshes)
}

// ConstantData holds mesh indices that stay valid for the process lifetime.
type ConstantData struct {
	CubeMeshIndex int // Unit cube (-1..1), scaled by box half extents
}

// NewConstantData registers the shared meshes.
func NewConstantData(meshes *MeshRegistry) ConstantData {
	cube := meshes.Add(Mesh{Name: "debug_cube", Lines: debug.UnitCubeWireframe()})
	logger.Debug("registered constant meshes", zap.Int("cube", cube))
	return ConstantData{CubeMeshIndex: cube}
}
