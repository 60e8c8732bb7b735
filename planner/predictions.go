package planner

// Waypoint is one predicted position of another vehicle: which lane it is in
// and where along the road it sits.
type Waypoint struct {
	Lane int     `yaml:"lane"`
	S    float64 `yaml:"s"`
}

// Predictions maps other-vehicle identifiers to their forecast positions.
// Index 0 is the current (now) position; each subsequent index is one time
// step later.
//
// The trajectory rollout consumes a Predictions value destructively, popping
// the head waypoint of every sequence as simulated time advances. Any
// component that simulates multiple independent futures from the same base
// forecast must hand each simulation its own Clone; sharing one value across
// candidates would silently corrupt cost comparisons.
type Predictions map[string][]Waypoint

// Clone returns an independent deep copy. Mutating the copy (or advancing it
// during rollout) never affects the receiver.
func (p Predictions) Clone() Predictions {
	if p == nil {
		return nil
	}
	out := make(Predictions, len(p))
	for id, wps := range p {
		cp := make([]Waypoint, len(wps))
		copy(cp, wps)
		out[id] = cp
	}
	return out
}

// advance drops the head waypoint of every sequence, representing one elapsed
// simulation step. Sequences already empty stay empty.
func (p Predictions) advance() {
	for id, wps := range p {
		if len(wps) > 0 {
			p[id] = wps[1:]
		}
	}
}
