package math

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Isometry is a rigid transform (rotation then translation) in double precision,
// the pose representation used by the physics world.
type Isometry struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// IdentityIsometry returns the rigid identity.
func IdentityIsometry() Isometry {
	return Isometry{Rotation: mgl64.QuatIdent()}
}

// Isometry returns the rigid part of t. Scale is dropped.
func (t Transform) Isometry() Isometry {
	q := t.Rotation.Normalize()
	return Isometry{
		Translation: mgl64.Vec3{float64(t.Position[0]), float64(t.Position[1]), float64(t.Position[2])},
		Rotation: mgl64.Quat{
			W: float64(q.W),
			V: mgl64.Vec3{float64(q.V[0]), float64(q.V[1]), float64(q.V[2])},
		}.Normalize(),
	}
}

// TransformPoint maps a point from local to world space.
func (iso Isometry) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return iso.Rotation.Rotate(p).Add(iso.Translation)
}

// InverseTransformPoint maps a world point into local space.
func (iso Isometry) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return iso.Rotation.Conjugate().Rotate(p.Sub(iso.Translation))
}

// InverseTransformVector rotates a world direction into local space.
func (iso Isometry) InverseTransformVector(v mgl64.Vec3) mgl64.Vec3 {
	return iso.Rotation.Conjugate().Rotate(v)
}
