package physics

import "fmt"

// ColliderHandle identifies a collider in a ColliderSet.
// Handles of removed colliders are never handed out again.
type ColliderHandle struct {
	index      uint32
	generation uint32
}

// IsValid reports whether h could refer to a collider.
func (h ColliderHandle) IsValid() bool {
	return h.generation != 0
}

// Raw packs the handle into an integer (generation in the high bits).
func (h ColliderHandle) Raw() uint64 {
	return uint64(h.generation)<<32 | uint64(h.index)
}

// HandleFromRaw reverses Raw.
func HandleFromRaw(raw uint64) ColliderHandle {
	return ColliderHandle{index: uint32(raw), generation: uint32(raw >> 32)}
}

// String returns the handle as "index:generation".
func (h ColliderHandle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.generation)
}

type colliderSlot struct {
	collider   *Collider
	generation uint32
}

// ColliderSet stores colliders by handle.
type ColliderSet struct {
	slots []colliderSlot
	free  []uint32
	count int
}

// NewColliderSet creates an empty set.
func NewColliderSet() *ColliderSet {
	return &ColliderSet{}
}

// Insert adds a collider and returns its handle.
func (cs *ColliderSet) Insert(c Collider) ColliderHandle {
	var index uint32
	if n := len(cs.free); n > 0 {
		index = cs.free[n-1]
		cs.free = cs.free[:n-1]
	} else {
		index = uint32(len(cs.slots))
		cs.slots = append(cs.slots, colliderSlot{})
	}

	slot := &cs.slots[index]
	slot.generation++
	stored := c
	slot.collider = &stored
	cs.count++
	return ColliderHandle{index: index, generation: slot.generation}
}

// Get returns the collider for h.
func (cs *ColliderSet) Get(h ColliderHandle) (*Collider, bool) {
	if !h.IsValid() || int(h.index) >= len(cs.slots) {
		return nil, false
	}
	slot := cs.slots[h.index]
	if slot.collider == nil || slot.generation != h.generation {
		return nil, false
	}
	return slot.collider, true
}

// Remove deletes the collider for h.
func (cs *ColliderSet) Remove(h ColliderHandle) bool {
	if _, ok := cs.Get(h); !ok {
		return false
	}
	cs.slots[h.index].collider = nil
	cs.free = append(cs.free, h.index)
	cs.count--
	return true
}

// Len returns the number of colliders.
func (cs *ColliderSet) Len() int {
	return cs.count
}

// Each calls fn for every collider in slot order until fn returns false.
func (cs *ColliderSet) Each(fn func(ColliderHandle, *Collider) bool) {
	for i, slot := range cs.slots {
		if slot.collider == nil {
			continue
		}
		if !fn(ColliderHandle{index: uint32(i), generation: slot.generation}, slot.collider) {
			return
		}
	}
}
