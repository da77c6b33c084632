package physics

// ColliderState is the recorded pose and shape of one collider.
type ColliderState struct {
	Handle      uint64     `msgpack:"h"`
	Translation [3]float64 `msgpack:"t"`
	Rotation    [4]float64 `msgpack:"r"` // x, y, z, w
	HalfExtents [3]float64 `msgpack:"e"`
	Memberships uint32     `msgpack:"m"`
}

// Snapshot is every collider in the world at one frame.
type Snapshot struct {
	Frame     uint64          `msgpack:"f"`
	Colliders []ColliderState `msgpack:"c"`
}

// Snapshot captures the current collider poses in slot order.
func (w *World) Snapshot(frame uint64) Snapshot {
	snap := Snapshot{
		Frame:     frame,
		Colliders: make([]ColliderState, 0, w.Colliders.Len()),
	}
	w.Colliders.Each(func(h ColliderHandle, c *Collider) bool {
		q := c.position.Rotation
		snap.Colliders = append(snap.Colliders, ColliderState{
			Handle:      h.Raw(),
			Translation: [3]float64(c.position.Translation),
			Rotation:    [4]float64{q.V[0], q.V[1], q.V[2], q.W},
			HalfExtents: [3]float64(c.Shape.HalfExtents),
			Memberships: uint32(c.Groups.Memberships),
		})
		return true
	})
	return snap
}
