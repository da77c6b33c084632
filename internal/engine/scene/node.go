package scene

import (
	"github.com/Faultbox/boneproxy/pkg/math"
)

// NodeDesc describes a node to create.
type NodeDesc struct {
	Name      string
	Transform math.Transform // zero means identity
	Parent    NodeID         // zero means no parent
	Visual    *Visual
	Skinned   bool
	SkinIndex int
}

// Node is a scene graph node. Transform is relative to the parent.
type Node struct {
	Name      string
	Transform math.Transform
	Visual    *Visual // nil when the node draws nothing

	// Skinned nodes own the skin at SkinIndex.
	Skinned   bool
	SkinIndex int

	id     NodeID
	parent NodeID
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID {
	return n.id
}

// Parent returns the parent id, if any.
func (n *Node) Parent() (NodeID, bool) {
	return n.parent, n.parent.IsValid()
}
