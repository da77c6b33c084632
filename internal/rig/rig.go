// Package rig loads skeleton assets and builds their scene nodes and skins.
package rig

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/boneproxy/pkg/math"
)

// Rig errors.
var (
	ErrNoBones       = errors.New("rig has no bones")
	ErrDuplicateBone = errors.New("duplicate bone name")
	ErrUnknownParent = errors.New("unknown parent bone")
	ErrBoneCycle     = errors.New("bone hierarchy contains a cycle")
	ErrInvalidBox    = errors.New("bone box half extents must be positive")
)

// Rig is a bone hierarchy with one collision box per bone.
type Rig struct {
	Name  string `yaml:"name"`
	Bones []Bone `yaml:"bones"`

	// Bone indices ordered so parents come before children.
	order []int
}

// Bone is one joint of the rig. Transform values are relative to the parent,
// or to the skin node for top-level bones.
type Bone struct {
	Name string `yaml:"name"`

	// Parent is empty for top-level bones.
	Parent string `yaml:"parent"`

	Translation [3]float32 `yaml:"translation"`
	Rotation    [3]float32 `yaml:"rotation"` // Euler XYZ in degrees
	Scale       [3]float32 `yaml:"scale"`    // Zero means 1
	Box         Box        `yaml:"box"`
}

// Box places the collision box in bone space.
type Box struct {
	Center      [3]float32 `yaml:"center"`
	HalfExtents [3]float32 `yaml:"half_extents"`
}

// Parse decodes and validates a YAML rig.
func Parse(data []byte) (*Rig, error) {
	var r Rig
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("rig: unmarshal: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("rig %q: %w", r.Name, err)
	}
	return &r, nil
}

// BoneCount returns the number of bones.
func (r *Rig) BoneCount() int {
	return len(r.Bones)
}

// LocalTransform returns the bone's transform relative to its parent.
func (b Bone) LocalTransform() math.Transform {
	scale := mgl32.Vec3(b.Scale)
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	rot := mgl32.AnglesToQuat(
		mgl32.DegToRad(b.Rotation[0]),
		mgl32.DegToRad(b.Rotation[1]),
		mgl32.DegToRad(b.Rotation[2]),
		mgl32.XYZ,
	)
	return math.FromScaleRotationTranslation(scale, rot, mgl32.Vec3(b.Translation))
}

// BoxTransform maps the unit cube onto the bone's collision box.
func (b Bone) BoxTransform() math.Transform {
	return math.FromScaleRotationTranslation(mgl32.Vec3(b.Box.HalfExtents), mgl32.QuatIdent(), mgl32.Vec3(b.Box.Center))
}

func (r *Rig) validate() error {
	if len(r.Bones) == 0 {
		return ErrNoBones
	}

	index := make(map[string]int, len(r.Bones))
	for i, b := range r.Bones {
		if _, dup := index[b.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateBone, b.Name)
		}
		index[b.Name] = i
		for _, h := range b.Box.HalfExtents {
			if h <= 0 {
				return fmt.Errorf("bone %q: %w", b.Name, ErrInvalidBox)
			}
		}
	}
	for _, b := range r.Bones {
		if b.Parent == "" {
			continue
		}
		if _, ok := index[b.Parent]; !ok {
			return fmt.Errorf("bone %q: %w %q", b.Name, ErrUnknownParent, b.Parent)
		}
	}

	// Depth-first ordering; a bone seen twice on the current path is a cycle.
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(r.Bones))
	order := make([]int, 0, len(r.Bones))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("bone %q: %w", r.Bones[i].Name, ErrBoneCycle)
		}
		state[i] = visiting
		if p := r.Bones[i].Parent; p != "" {
			if err := visit(index[p]); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}

	for i := range r.Bones {
		if err := visit(i); err != nil {
			return err
		}
	}
	r.order = order
	return nil
}
