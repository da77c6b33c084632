// Package scene provides the node arena shared by gameplay systems.
// Nodes are addressed by generational IDs; parent links are IDs, never pointers.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/boneproxy/pkg/math"
)

// Scene errors.
var (
	ErrNodeNotFound = errors.New("scene node not found")
	ErrParentCycle  = errors.New("parent assignment would create a cycle")
)

// NodeID identifies a node. The zero value never refers to a live node.
type NodeID struct {
	index      uint32
	generation uint32
}

// IsValid reports whether id could refer to a node (it may still be stale).
func (id NodeID) IsValid() bool {
	return id.generation != 0
}

// String returns the id as "index:generation".
func (id NodeID) String() string {
	return fmt.Sprintf("%d:%d", id.index, id.generation)
}

type nodeSlot struct {
	node       *Node
	generation uint32
}

// Scene owns every node and skin.
type Scene struct {
	slots []nodeSlot
	free  []uint32
	count int

	skins     []skinSlot
	freeSkins []int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddNode creates a node from desc and returns it.
// A zero desc.Transform is replaced by the identity.
func (s *Scene) AddNode(desc NodeDesc) *Node {
	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.slots))
		s.slots = append(s.slots, nodeSlot{})
	}

	slot := &s.slots[index]
	slot.generation++
	id := NodeID{index: index, generation: slot.generation}

	transform := desc.Transform
	if transform.IsZero() {
		transform = math.Identity()
	}

	slot.node = &Node{
		Name:      desc.Name,
		Transform: transform,
		Visual:    desc.Visual,
		Skinned:   desc.Skinned,
		SkinIndex: desc.SkinIndex,
		id:        id,
		parent:    desc.Parent,
	}
	s.count++
	return slot.node
}

// Node returns the live node for id.
func (s *Scene) Node(id NodeID) (*Node, bool) {
	if !id.IsValid() || int(id.index) >= len(s.slots) {
		return nil, false
	}
	slot := s.slots[id.index]
	if slot.node == nil || slot.generation != id.generation {
		return nil, false
	}
	return slot.node, true
}

// RemoveNode deletes a node. Children of the removed node become roots.
func (s *Scene) RemoveNode(id NodeID) bool {
	if _, ok := s.Node(id); !ok {
		return false
	}
	for _, slot := range s.slots {
		if slot.node != nil && slot.node.parent == id {
			slot.node.parent = NodeID{}
		}
	}
	s.slots[id.index].node = nil
	s.free = append(s.free, id.index)
	s.count--
	return true
}

// SetParent links child under parent. A zero parent detaches the child.
func (s *Scene) SetParent(child, parent NodeID) error {
	node, ok := s.Node(child)
	if !ok {
		return fmt.Errorf("set parent of %s: %w", child, ErrNodeNotFound)
	}
	if !parent.IsValid() {
		node.parent = NodeID{}
		return nil
	}
	if _, ok := s.Node(parent); !ok {
		return fmt.Errorf("set parent %s: %w", parent, ErrNodeNotFound)
	}
	for cur := parent; cur.IsValid(); {
		if cur == child {
			return fmt.Errorf("set parent of %s to %s: %w", child, parent, ErrParentCycle)
		}
		n, ok := s.Node(cur)
		if !ok {
			break
		}
		cur = n.parent
	}
	node.parent = parent
	return nil
}

// Len returns the number of live nodes.
func (s *Scene) Len() int {
	return s.count
}

// Nodes calls fn for every live node in slot order until fn returns false.
func (s *Scene) Nodes(fn func(*Node) bool) {
	for _, slot := range s.slots {
		if slot.node == nil {
			continue
		}
		if !fn(slot.node) {
			return
		}
	}
}

// GlobalTransform composes the transforms of id and all of its ancestors.
func (s *Scene) GlobalTransform(id NodeID) (math.Transform, bool) {
	node, ok := s.Node(id)
	if !ok {
		return math.Transform{}, false
	}

	// Parent links are acyclic: SetParent rejects cycles and AddNode
	// can only point a fresh node at an existing one.
	chain := []*Node{node}
	for {
		parent, ok := s.Node(chain[len(chain)-1].parent)
		if !ok {
			break
		}
		chain = append(chain, parent)
	}

	global := math.Identity()
	for i := len(chain) - 1; i >= 0; i-- {
		global = global.Mul(chain[i].Transform)
	}
	return global, true
}

// SkeletonAncestry returns bone followed by its ancestors, ending at
// skeletonRoot when skeletonRoot is one of them. The walk never climbs above
// skeletonRoot. Returns nil when bone does not exist.
func (s *Scene) SkeletonAncestry(bone, skeletonRoot NodeID) []NodeID {
	node, ok := s.Node(bone)
	if !ok {
		return nil
	}

	list := []NodeID{bone}
	for node.id != skeletonRoot {
		parent, ok := s.Node(node.parent)
		if !ok {
			break
		}
		list = append(list, parent.id)
		node = parent
	}
	return list
}
