package character

import (
	"github.com/Faultbox/boneproxy/internal/engine/physics"
	"github.com/Faultbox/boneproxy/internal/engine/renderer"
	"github.com/Faultbox/boneproxy/internal/engine/scene"
)

// ID identifies a character in a Manager. IDs start at 1 and are not reused.
type ID uint32

// Hit is a physics hit attributed to a character bone.
type Hit struct {
	Character ID
	Bone      int
}

type hitTarget struct {
	id   ID
	bone int
}

// Manager manages all characters in the simulation.
type Manager struct {
	characters map[ID]*Character
	order      []ID
	nextID     ID

	// Reverse index from collider to owning bone, rebuilt when a
	// character's proxies are created or released.
	byCollider map[physics.ColliderHandle]hitTarget
}

// NewManager creates a new character manager.
func NewManager() *Manager {
	return &Manager{
		characters: make(map[ID]*Character),
		byCollider: make(map[physics.ColliderHandle]hitTarget),
		nextID:     1,
	}
}

// Spawn creates a character for the skin bound under root.
func (m *Manager) Spawn(s *scene.Scene, w *physics.World, cd renderer.ConstantData, root scene.NodeID, skinIndex int) ID {
	id := m.nextID
	m.nextID++

	c := New(s, w, cd, root, skinIndex)
	m.characters[id] = c
	m.order = append(m.order, id)
	m.index(id, c)
	return id
}

// Despawn destroys a character and its proxies.
func (m *Manager) Despawn(s *scene.Scene, w *physics.World, id ID) bool {
	c, ok := m.characters[id]
	if !ok {
		return false
	}
	m.unindex(c)
	c.Destroy(s, w)
	delete(m.characters, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns a character by ID.
func (m *Manager) Get(id ID) *Character {
	return m.characters[id]
}

// Count returns the number of characters.
func (m *Manager) Count() int {
	return len(m.characters)
}

// All returns all characters in spawn order.
func (m *Manager) All() []*Character {
	result := make([]*Character, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.characters[id])
	}
	return result
}

// UpdateAll updates every character in spawn order.
func (m *Manager) UpdateAll(s *scene.Scene, w *physics.World) {
	for _, id := range m.order {
		c := m.characters[id]
		before := c.ProxyCount()
		c.Update(s, w)
		if c.ProxyCount() != before {
			m.index(id, c)
		}
	}
}

// DispatchHit attributes a collider hit to a character bone and paints
// its debug box. Colliders not owned by any character are ignored.
func (m *Manager) DispatchHit(s *scene.Scene, h physics.ColliderHandle) (Hit, bool) {
	target, ok := m.byCollider[h]
	if !ok {
		return Hit{}, false
	}
	c := m.characters[target.id]
	if c == nil {
		return Hit{}, false
	}
	bone, ok := c.HandleHit(s, h)
	if !ok {
		return Hit{}, false
	}
	return Hit{Character: target.id, Bone: bone}, true
}

// ToggleAll flips debug box display on every character.
func (m *Manager) ToggleAll(s *scene.Scene) {
	for _, id := range m.order {
		m.characters[id].ToggleCollisionBoxDisplay(s)
	}
}

// Clear despawns every character.
func (m *Manager) Clear(s *scene.Scene, w *physics.World) {
	for _, id := range append([]ID(nil), m.order...) {
		m.Despawn(s, w, id)
	}
}

func (m *Manager) index(id ID, c *Character) {
	for bone, h := range c.boxColliders {
		m.byCollider[h] = hitTarget{id: id, bone: bone}
	}
}

func (m *Manager) unindex(c *Character) {
	for _, h := range c.boxColliders {
		delete(m.byCollider, h)
	}
}
