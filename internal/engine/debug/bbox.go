// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"
)

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// UnitCubeWireframe returns the wireframe of the cube spanning -1..1 on
// every axis. Scaling it by a box's half extents yields the box.
func UnitCubeWireframe() []float32 {
	return GenerateBBoxWireframeVertices(-1, -1, -1, 1, 1, 1)
}

// OrientedBoxWireframe maps the unit cube wireframe through m.
func OrientedBoxWireframe(m mgl32.Mat4) []float32 {
	verts := UnitCubeWireframe()
	for i := 0; i < len(verts); i += 3 {
		p := mgl32.TransformCoordinate(mgl32.Vec3{verts[i], verts[i+1], verts[i+2]}, m)
		verts[i], verts[i+1], verts[i+2] = p[0], p[1], p[2]
	}
	return verts
}

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24
