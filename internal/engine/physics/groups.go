package physics

// Group is a bitmask of collision groups.
type Group uint32

// GroupAll has every group bit set.
const GroupAll Group = 0xFFFFFFFF

// InteractionGroups filters which colliders may interact.
// Two sets of groups interact when each one's memberships intersect the
// other's filter.
type InteractionGroups struct {
	Memberships Group
	Filter      Group
}

// AllGroups returns groups that belong to and interact with everything.
func AllGroups() InteractionGroups {
	return InteractionGroups{Memberships: GroupAll, Filter: GroupAll}
}

// WithMemberships returns g with its memberships replaced.
func (g InteractionGroups) WithMemberships(m Group) InteractionGroups {
	g.Memberships = m
	return g
}

// WithFilter returns g with its filter replaced.
func (g InteractionGroups) WithFilter(f Group) InteractionGroups {
	g.Filter = f
	return g
}

// Test reports whether g and other are allowed to interact.
func (g InteractionGroups) Test(other InteractionGroups) bool {
	return g.Memberships&other.Filter != 0 && other.Memberships&g.Filter != 0
}
