package rig

import (
	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/pkg/math"
)

// Instance is a rig placed in a scene.
type Instance struct {
	Root      scene.NodeID // Character root, carries the world placement
	SkinNode  scene.NodeID // Owns the skin, identity under Root
	SkinIndex int
	Bones     []scene.NodeID // In rig bone order
}

// Instantiate adds the rig to s under a new root node named name:
//
//	name -> name/mesh (skinned) -> bones...
//
// r must come from Parse or Load.
func (r *Rig) Instantiate(s *scene.Scene, name string, placement math.Transform) Instance {
	root := s.AddNode(scene.NodeDesc{Name: name, Transform: placement}).ID()

	bones := make([]scene.NodeID, len(r.Bones))
	boxes := make([]math.Transform, len(r.Bones))
	skinIndex := s.AddSkin(scene.Skin{Name: r.Name})

	skinNode := s.AddNode(scene.NodeDesc{
		Name:      name + "/mesh",
		Parent:    root,
		Skinned:   true,
		SkinIndex: skinIndex,
	}).ID()

	byName := make(map[string]scene.NodeID, len(r.Bones))
	for _, i := range r.order {
		b := r.Bones[i]
		parent := skinNode
		if b.Parent != "" {
			parent = byName[b.Parent]
		}
		id := s.AddNode(scene.NodeDesc{
			Name:      name + "/" + b.Name,
			Parent:    parent,
			Transform: b.LocalTransform(),
		}).ID()
		byName[b.Name] = id
		bones[i] = id
		boxes[i] = b.BoxTransform()
	}

	skin, _ := s.Skin(skinIndex)
	skin.BoneNodeIDs = bones
	skin.BoneBoxTransforms = boxes

	return Instance{
		Root:      root,
		SkinNode:  skinNode,
		SkinIndex: skinIndex,
		Bones:     bones,
	}
}

// Remove deletes the instance's nodes and releases its skin index.
func (in Instance) Remove(s *scene.Scene) {
	for _, id := range in.Bones {
		s.RemoveNode(id)
	}
	s.RemoveNode(in.SkinNode)
	s.RemoveNode(in.Root)
	s.RemoveSkin(in.SkinIndex)
}
