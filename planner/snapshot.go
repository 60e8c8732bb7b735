package planner

// Snapshot is an immutable capture of a Vehicle's planning-relevant fields at
// one instant. All fields are plain values; it never aliases the live vehicle.
type Snapshot struct {
	Lane  int
	S     float64
	V     float64
	A     float64
	State ManeuverState
}

// Trajectory is an ordered sequence of snapshots produced by one speculative
// rollout. Index 0 is the pre-rollout state.
type Trajectory []Snapshot

// Snapshot captures the vehicle's current fields.
func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{Lane: v.Lane, S: v.S, V: v.V, A: v.A, State: v.State}
}

// Restore resets the vehicle's fields from a snapshot.
func (v *Vehicle) Restore(snap Snapshot) {
	v.Lane = snap.Lane
	v.S = snap.S
	v.V = snap.V
	v.A = snap.A
	v.State = snap.State
}
