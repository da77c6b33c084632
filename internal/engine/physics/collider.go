// Package physics provides the collider store and spatial queries used by
// gameplay. It has no dynamics: colliders move only when their position is set.
package physics

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/boneproxy/pkg/math"
)

// Cuboid is a box centered on the collider origin.
type Cuboid struct {
	HalfExtents mgl64.Vec3
}

// Collider is a shape with a pose and interaction groups.
type Collider struct {
	Shape  Cuboid
	Groups InteractionGroups

	position math.Isometry
}

// Position returns the collider pose in world space.
func (c *Collider) Position() math.Isometry {
	return c.position
}

// SetPosition moves the collider. The shape is unchanged.
func (c *Collider) SetPosition(iso math.Isometry) {
	c.position = iso
}

// ColliderBuilder assembles a Collider.
type ColliderBuilder struct {
	collider Collider
}

// NewCuboid starts a box collider with the given half extents.
// Negative extents (mirrored bones) are taken by magnitude.
func NewCuboid(hx, hy, hz float64) *ColliderBuilder {
	return &ColliderBuilder{
		collider: Collider{
			Shape: Cuboid{HalfExtents: mgl64.Vec3{
				gomath.Abs(hx),
				gomath.Abs(hy),
				gomath.Abs(hz),
			}},
			Groups:   AllGroups(),
			position: math.IdentityIsometry(),
		},
	}
}

// CollisionGroups sets the interaction groups.
func (b *ColliderBuilder) CollisionGroups(g InteractionGroups) *ColliderBuilder {
	b.collider.Groups = g
	return b
}

// Position sets the initial pose.
func (b *ColliderBuilder) Position(iso math.Isometry) *ColliderBuilder {
	b.collider.position = iso
	return b
}

// Build returns the collider.
func (b *ColliderBuilder) Build() Collider {
	return b.collider
}
