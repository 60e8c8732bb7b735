package planner

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// CostFunc scores a candidate trajectory. Lower is better. It must be
// deterministic for identical inputs and total-ordered (never NaN). The
// predictions argument is the original forecast for the cycle, not the
// consumed per-candidate copy.
type CostFunc func(v *Vehicle, traj Trajectory, preds Predictions) (float64, error)

// DecisionSink receives one record per evaluated candidate. Implementations
// must not influence selection; the selector calls it purely for
// observability. A nil sink disables reporting.
type DecisionSink interface {
	RecordDecision(state ManeuverState, traj Trajectory, cost float64)
}

// StateSelector enumerates the legal candidate maneuvers, simulates each one,
// and picks the cheapest according to the configured cost function.
type StateSelector struct {
	Cost CostFunc
	// Sink optionally observes every (state, trajectory, cost) evaluation.
	Sink DecisionSink
	// Horizon is the rollout length per candidate; zero means
	// DefaultTrajectoryHorizon.
	Horizon int
}

// NewStateSelector creates a selector with the default horizon.
func NewStateSelector(cost CostFunc) *StateSelector {
	return &StateSelector{Cost: cost}
}

// candidateStates returns the legal candidates in the fixed enumeration order
// [KL, LCL, LCR], dropping LCL in the leftmost lane and LCR in the rightmost.
// The order is load-bearing: cost ties resolve to the earliest candidate.
func candidateStates(lane, lanesAvailable int) []ManeuverState {
	states := []ManeuverState{StateKeepLane, StateLaneChangeLeft, StateLaneChangeRight}
	if lane == 0 {
		states = lo.Without(states, StateLaneChangeLeft)
	}
	if lane == lanesAvailable-1 {
		states = lo.Without(states, StateLaneChangeRight)
	}
	return states
}

// ChooseState evaluates every legal candidate maneuver and returns the
// arg-min. Each candidate is rolled out on its own deep copy of the
// predictions; the caller's value is left untouched. A cost evaluation error
// aborts the whole cycle: the selector never chooses from incomplete data.
func (sel *StateSelector) ChooseState(v *Vehicle, preds Predictions) (ManeuverState, error) {
	cfg, err := v.requireConfig("choosing state")
	if err != nil {
		return "", err
	}
	if sel.Cost == nil {
		return "", errors.New("choosing state: no cost function")
	}
	horizon := sel.Horizon
	if horizon <= 0 {
		horizon = DefaultTrajectoryHorizon
	}

	candidates := candidateStates(v.Lane, cfg.LanesAvailable)
	logrus.Debugf("candidate states for lane %d: %v", v.Lane, candidates)

	var best ManeuverState
	var bestCost float64
	haveBest := false
	for _, state := range candidates {
		traj := v.trajectoryForState(cfg, state, preds.Clone(), horizon)
		cost, err := sel.Cost(v, traj, preds)
		if err != nil {
			return "", fmt.Errorf("scoring %s: %w", state, err)
		}
		logrus.Debugf("candidate %s scored %.4f", state, cost)
		if sel.Sink != nil {
			sel.Sink.RecordDecision(state, traj, cost)
		}
		// strict < keeps the first candidate on ties (stable arg-min)
		if !haveBest || cost < bestCost {
			best = state
			bestCost = cost
			haveBest = true
		}
	}
	return best, nil
}
