package character

import (
	"github.com/Faultbox/boneproxy/internal/engine/scene"
	"github.com/Faultbox/boneproxy/pkg/math"
)

// ResolveBoneWorldTransform returns the world transform of a bone's bounding
// box: rootGlobal * skeletonSpace * boneBox, where skeletonSpace folds the
// local transforms from skeletonRoot down to the bone.
//
// It fails when the skin, the bone index or the bone's node is missing.
func ResolveBoneWorldTransform(s *scene.Scene, skinIndex int, skeletonRoot scene.NodeID, bone int, rootGlobal math.Transform) (math.Transform, bool) {
	skin, ok := s.Skin(skinIndex)
	if !ok || bone < 0 || bone >= len(skin.BoneNodeIDs) || bone >= len(skin.BoneBoxTransforms) {
		return math.Transform{}, false
	}
	return resolveBone(s, skin.BoneNodeIDs[bone], skeletonRoot, skin.BoneBoxTransforms[bone], rootGlobal)
}

func resolveBone(s *scene.Scene, boneNode, skeletonRoot scene.NodeID, box, rootGlobal math.Transform) (math.Transform, bool) {
	ancestry := s.SkeletonAncestry(boneNode, skeletonRoot)
	if len(ancestry) == 0 {
		return math.Transform{}, false
	}

	// ancestry runs bone -> root; fold it root -> bone.
	skeletonSpace := math.Identity()
	for i := len(ancestry) - 1; i >= 0; i-- {
		node, ok := s.Node(ancestry[i])
		if !ok {
			continue
		}
		skeletonSpace = skeletonSpace.Mul(node.Transform)
	}

	return rootGlobal.Mul(skeletonSpace).Mul(box), true
}

// boneSnapshot is a copy of the skin data read once per update.
type boneSnapshot struct {
	nodes []scene.NodeID
	boxes []math.Transform
}

func snapshotSkin(skin *scene.Skin) boneSnapshot {
	n := min(len(skin.BoneNodeIDs), len(skin.BoneBoxTransforms))
	return boneSnapshot{
		nodes: append([]scene.NodeID(nil), skin.BoneNodeIDs[:n]...),
		boxes: append([]math.Transform(nil), skin.BoneBoxTransforms[:n]...),
	}
}

func (b boneSnapshot) len() int {
	return len(b.nodes)
}
