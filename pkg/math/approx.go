package math

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ApproxEqualVec3 reports whether every component of a and b differs by at
// most eps. Unlike mgl32's relative threshold it behaves the same near zero.
func ApproxEqualVec3(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// ApproxEqualVec3d is ApproxEqualVec3 for physics-space vectors.
func ApproxEqualVec3d(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if mgl64.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func approxEqualQuat(a, b mgl32.Quat, eps float32) bool {
	return mgl32.Abs(a.W-b.W) <= eps && ApproxEqualVec3(a.V, b.V, eps)
}
