package scene

import (
	"github.com/Faultbox/boneproxy/pkg/math"
)

// Skin binds a set of bone nodes to a mesh.
// BoneNodeIDs and BoneBoxTransforms are index-aligned by bone.
type Skin struct {
	Name        string
	BoneNodeIDs []NodeID

	// BoneBoxTransforms place a unit cube (-1..1) around each bone's
	// skinned vertices in bone space; the scale is the box half extents.
	BoneBoxTransforms []math.Transform
}

// BoneCount returns the number of bones in the skin.
func (sk *Skin) BoneCount() int {
	return len(sk.BoneNodeIDs)
}

type skinSlot struct {
	skin Skin
	live bool
}

// AddSkin registers a skin and returns its index.
// Indices freed by RemoveSkin are reused.
func (s *Scene) AddSkin(skin Skin) int {
	if n := len(s.freeSkins); n > 0 {
		index := s.freeSkins[n-1]
		s.freeSkins = s.freeSkins[:n-1]
		s.skins[index] = skinSlot{skin: skin, live: true}
		return index
	}
	s.skins = append(s.skins, skinSlot{skin: skin, live: true})
	return len(s.skins) - 1
}

// RemoveSkin unregisters the skin at index. Nodes still pointing at the
// index see no skin until the index is handed out again.
func (s *Scene) RemoveSkin(index int) bool {
	if index < 0 || index >= len(s.skins) || !s.skins[index].live {
		return false
	}
	s.skins[index] = skinSlot{}
	s.freeSkins = append(s.freeSkins, index)
	return true
}

// Skin returns the skin at index.
func (s *Scene) Skin(index int) (*Skin, bool) {
	if index < 0 || index >= len(s.skins) || !s.skins[index].live {
		return nil, false
	}
	return &s.skins[index].skin, true
}

// SkinCount returns the number of registered skins.
func (s *Scene) SkinCount() int {
	return len(s.skins) - len(s.freeSkins)
}

// FindSkinNode returns the first node that owns the skin at index.
func (s *Scene) FindSkinNode(index int) (NodeID, bool) {
	var found NodeID
	s.Nodes(func(n *Node) bool {
		if n.Skinned && n.SkinIndex == index {
			found = n.id
			return false
		}
		return true
	})
	return found, found.IsValid()
}
