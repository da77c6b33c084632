// Package math provides the transform types shared by the scene and physics packages.
package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a scale, rotation and translation applied in that order.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// Identity returns a transform that leaves points unchanged.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromTranslation returns a pure translation.
func FromTranslation(x, y, z float32) Transform {
	t := Identity()
	t.Position = mgl32.Vec3{x, y, z}
	return t
}

// FromRotation returns a pure rotation.
func FromRotation(q mgl32.Quat) Transform {
	t := Identity()
	t.Rotation = q.Normalize()
	return t
}

// FromScaleRotationTranslation builds a transform from its components.
func FromScaleRotationTranslation(scale mgl32.Vec3, rotation mgl32.Quat, translation mgl32.Vec3) Transform {
	return Transform{
		Position: translation,
		Rotation: rotation.Normalize(),
		Scale:    scale,
	}
}

// IsZero reports whether t is the zero value (not the identity).
func (t Transform) IsZero() bool {
	return t == Transform{}
}

// Mat4 returns the column-major matrix Translate * Rotate * Scale.
func (t Transform) Mat4() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(t.Rotation.Normalize().Mat4())
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Mul returns t * other: other is applied first, then t.
func (t Transform) Mul(other Transform) Transform {
	return FromMat4(t.Mat4().Mul4(other.Mat4()))
}

// TransformPoint applies t to a point.
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, t.Mat4())
}

// Decompose returns the scale, rotation and translation of t.
func (t Transform) Decompose() (scale mgl32.Vec3, rotation mgl32.Quat, translation mgl32.Vec3) {
	return t.Scale, t.Rotation, t.Position
}

// FromMat4 decomposes an affine matrix into a Transform.
// Shear is discarded. A negative determinant is folded into the X scale.
func FromMat4(m mgl32.Mat4) Transform {
	sx := m.Col(0).Vec3().Len()
	sy := m.Col(1).Vec3().Len()
	sz := m.Col(2).Vec3().Len()
	if m.Mat3().Det() < 0 {
		sx = -sx
	}

	rot := mgl32.Ident4()
	if sx != 0 && sy != 0 && sz != 0 {
		rot.SetCol(0, m.Col(0).Mul(1/sx))
		rot.SetCol(1, m.Col(1).Mul(1/sy))
		rot.SetCol(2, m.Col(2).Mul(1/sz))
		rot.SetCol(3, mgl32.Vec4{0, 0, 0, 1})
	}

	return Transform{
		Position: m.Col(3).Vec3(),
		Rotation: mgl32.Mat4ToQuat(rot).Normalize(),
		Scale:    mgl32.Vec3{sx, sy, sz},
	}
}

// ApproxEqual compares two transforms component-wise with absolute
// tolerance eps. q and -q are treated as the same rotation.
func (t Transform) ApproxEqual(other Transform, eps float32) bool {
	if !ApproxEqualVec3(t.Position, other.Position, eps) {
		return false
	}
	if !ApproxEqualVec3(t.Scale, other.Scale, eps) {
		return false
	}
	return approxEqualQuat(t.Rotation, other.Rotation, eps) ||
		approxEqualQuat(t.Rotation.Scale(-1), other.Rotation, eps)
}
