package planner

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
)

// realizeState applies the effect of the vehicle's current maneuver state:
// the concrete acceleration it implies, and for lane-change states the new
// lane. Lane changes happen instantaneously, with no transition ramp.
//
// The state set is closed; an unrecognized tag is a programming error.
func (v *Vehicle) realizeState(cfg RoadConfig, preds Predictions) {
	switch v.State {
	case StateConstantSpeed:
		v.A = 0
	case StateKeepLane:
		v.A = v.maxAccelForLane(cfg, preds, v.Lane, v.S)
	case StateLaneChangeLeft:
		v.realizeLaneChange(cfg, preds, -1)
	case StateLaneChangeRight:
		v.realizeLaneChange(cfg, preds, +1)
	case StatePrepLaneChangeLeft:
		v.realizePrepLaneChange(cfg, preds, -1)
	case StatePrepLaneChangeRight:
		v.realizePrepLaneChange(cfg, preds, +1)
	default:
		panic(fmt.Sprintf("planner: unknown maneuver state %q", v.State))
	}
}

// sortedVehicleIDs returns the prediction keys in ascending order so that
// nearest-vehicle scans break positional ties deterministically.
func sortedVehicleIDs(preds Predictions) []string {
	ids := lo.Keys(preds)
	sort.Strings(ids)
	return ids
}

// maxAccelForLane computes the largest acceleration the ego can hold in the
// given lane without exceeding the hard limit, overshooting the target speed,
// or cutting into the preferred buffer behind the nearest lead vehicle.
//
// Vehicles with fewer than two remaining predicted positions cannot supply a
// one-step-ahead location and are treated as no constraint.
func (v *Vehicle) maxAccelForLane(cfg RoadConfig, preds Predictions, lane int, s float64) float64 {
	headroom := cfg.TargetSpeed - v.V
	maxAcc := math.Min(cfg.MaxAcceleration, headroom)

	// nearest lead vehicle: current predicted position in this lane, strictly ahead
	var lead []Waypoint
	found := false
	for _, id := range sortedVehicleIDs(preds) {
		wps := preds[id]
		if len(wps) < 2 || wps[0].Lane != lane || wps[0].S <= s {
			continue
		}
		if !found || wps[0].S < lead[0].S {
			lead = wps
			found = true
		}
	}
	if !found {
		return maxAcc
	}

	nextLeadS := lead[1].S
	myNextS := s + v.V // one step at current velocity
	room := (nextLeadS - myNextS) - cfg.PreferredBuffer
	// negative room means holding speed for one more step would violate the
	// buffer; the result is then a braking acceleration
	return math.Min(maxAcc, room)
}

// realizeLaneChange shifts the lane immediately and applies keep-lane
// longitudinal behavior in the new lane.
func (v *Vehicle) realizeLaneChange(cfg RoadConfig, preds Predictions, delta int) {
	v.Lane += delta
	v.A = v.maxAccelForLane(cfg, preds, v.Lane, v.S)
}

// realizePrepLaneChange adjusts speed to slot in behind the nearest vehicle
// at or behind the ego in the adjacent target lane. The ego's lane is not
// changed.
//
// With no qualifying vehicle the adjacent lane imposes no constraint and the
// ego accelerates freely toward target speed, bounded by the hard limit.
func (v *Vehicle) realizePrepLaneChange(cfg RoadConfig, preds Predictions, delta int) {
	targetLane := v.Lane + delta

	// nearest behind: largest current s at or behind the ego in the target lane
	var behind []Waypoint
	found := false
	for _, id := range sortedVehicleIDs(preds) {
		wps := preds[id]
		if len(wps) < 2 || wps[0].Lane != targetLane || wps[0].S > v.S {
			continue
		}
		if !found || wps[0].S > behind[0].S {
			behind = wps
			found = true
		}
	}
	if !found {
		v.A = math.Min(cfg.MaxAcceleration, cfg.TargetSpeed-v.V)
		return
	}

	// implied velocity from the first two predicted positions
	targetVel := behind[1].S - behind[0].S
	deltaV := v.V - targetVel
	deltaS := v.S - behind[0].S
	if deltaV == 0 {
		// no closing-time estimate possible; hold current acceleration
		return
	}
	t := -2 * deltaS / deltaV
	if t == 0 {
		return
	}
	v.A = clamp(deltaV/t, -cfg.MaxAcceleration, cfg.MaxAcceleration)
}

// clamp bounds x to [lower, upper].
func clamp(x, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, x))
}
