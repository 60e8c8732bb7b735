package planner

import "math"

// KinematicState is a projected (lane, s, v, a) tuple at some future time.
type KinematicState struct {
	Lane int
	S    float64
	V    float64
	A    float64
}

// StateAt projects the vehicle t time units into the future assuming its
// acceleration stays constant:
//
//	s' = s + v·t + a·t²/2
//	v' = v + a·t
//
// Lane and acceleration are unchanged. Pure; the vehicle is not modified.
func (v *Vehicle) StateAt(t float64) KinematicState {
	return KinematicState{
		Lane: v.Lane,
		S:    v.S + v.V*t + v.A*t*t/2,
		V:    v.V + v.A*t,
		A:    v.A,
	}
}

// CollidesWith reports whether v and other are predicted to occupy the same
// lane within one vehicle length of each other at time t. Symmetric by
// construction. The length comes from v's configuration when set, otherwise
// DefaultVehicleLength.
func (v *Vehicle) CollidesWith(other *Vehicle, t float64) bool {
	length := DefaultVehicleLength
	if v.cfg != nil {
		length = v.cfg.Length
	}
	a := v.StateAt(t)
	b := other.StateAt(t)
	return a.Lane == b.Lane && math.Abs(a.S-b.S) <= length
}

// WillCollideWith scans t = 0..horizon inclusive and returns the first time
// step at which a collision is predicted. The second return is -1 when no
// collision occurs within the horizon.
func (v *Vehicle) WillCollideWith(other *Vehicle, horizon int) (bool, int) {
	for t := 0; t <= horizon; t++ {
		if v.CollidesWith(other, float64(t)) {
			return true, t
		}
	}
	return false, -1
}

// DefaultPredictionHorizon is the number of steps GeneratePredictions
// forecasts when given a non-positive horizon.
const DefaultPredictionHorizon = 10

// GeneratePredictions produces this vehicle's own {s, lane} forecast for
// t = 0..horizon-1, assuming the current acceleration holds constant. The
// outer harness feeds these to the other planners.
func (v *Vehicle) GeneratePredictions(horizon int) []Waypoint {
	if horizon <= 0 {
		horizon = DefaultPredictionHorizon
	}
	wps := make([]Waypoint, 0, horizon)
	for t := 0; t < horizon; t++ {
		ks := v.StateAt(float64(t))
		wps = append(wps, Waypoint{Lane: ks.Lane, S: ks.S})
	}
	return wps
}
