package physics

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line in world space.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // Normalized direction
}

// NewRay builds a ray, normalizing dir.
func NewRay(origin, dir mgl64.Vec3) Ray {
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: origin, Direction: dir}
}

// PointAt returns the point at distance toi along the ray.
func (r Ray) PointAt(toi float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(toi))
}

// RayHit is the nearest collider struck by a ray.
type RayHit struct {
	Collider ColliderHandle
	Toi      float64 // Distance along the ray
	Point    mgl64.Vec3
}

// intersectBox tests a ray against the box [-half, +half] using the slab
// method. Origin and direction must already be in box space.
// If the origin is inside the box, the exit distance is returned.
func intersectBox(origin, dir, half mgl64.Vec3) (float64, bool) {
	tmin := -gomath.MaxFloat64
	tmax := gomath.MaxFloat64

	for axis := 0; axis < 3; axis++ {
		lo, hi := -half[axis], half[axis]
		if dir[axis] == 0 {
			// Parallel to the slab: must already be between its planes
			if origin[axis] < lo || origin[axis] > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - origin[axis]) / dir[axis]
		t2 := (hi - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = gomath.Max(tmin, t1)
		tmax = gomath.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// CastRay returns the nearest collider hit within maxToi whose groups
// interact with filter.
func (cs *ColliderSet) CastRay(ray Ray, maxToi float64, filter InteractionGroups) (RayHit, bool) {
	var best RayHit
	found := false

	cs.Each(func(h ColliderHandle, c *Collider) bool {
		if !filter.Test(c.Groups) {
			return true
		}
		// Rotation preserves length, so toi in box space is toi in world space.
		o := c.position.InverseTransformPoint(ray.Origin)
		d := c.position.InverseTransformVector(ray.Direction)
		toi, ok := intersectBox(o, d, c.Shape.HalfExtents)
		if !ok || toi > maxToi {
			return true
		}
		if !found || toi < best.Toi {
			best = RayHit{Collider: h, Toi: toi, Point: ray.PointAt(toi)}
			found = true
		}
		return true
	})

	return best, found
}
