package physics

// HitEvent reports a queued ray that struck a collider during Step.
type HitEvent struct {
	Tag uint64 // Caller-supplied id of the query
	Hit RayHit
}

type queuedRay struct {
	tag    uint64
	ray    Ray
	maxToi float64
	filter InteractionGroups
}

// World holds the collider set and the queries waiting for the next step.
type World struct {
	Colliders *ColliderSet

	pending []queuedRay
	steps   uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{Colliders: NewColliderSet()}
}

// QueueRay schedules a ray cast for the next Step.
func (w *World) QueueRay(tag uint64, ray Ray, maxToi float64, filter InteractionGroups) {
	w.pending = append(w.pending, queuedRay{tag: tag, ray: ray, maxToi: maxToi, filter: filter})
}

// CastRay casts immediately against the current collider poses.
func (w *World) CastRay(ray Ray, maxToi float64, filter InteractionGroups) (RayHit, bool) {
	return w.Colliders.CastRay(ray, maxToi, filter)
}

// Step resolves every queued query against the poses set since the last
// step and returns the hits in queue order. Misses produce no event.
func (w *World) Step() []HitEvent {
	var events []HitEvent
	for _, q := range w.pending {
		if hit, ok := w.Colliders.CastRay(q.ray, q.maxToi, q.filter); ok {
			events = append(events, HitEvent{Tag: q.tag, Hit: hit})
		}
	}
	w.pending = w.pending[:0]
	w.steps++
	return events
}

// Steps returns how many times Step has run.
func (w *World) Steps() uint64 {
	return w.steps
}
