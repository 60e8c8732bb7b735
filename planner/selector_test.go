package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateStates_LaneBounds(t *testing.T) {
	cases := []struct {
		name  string
		lane  int
		lanes int
		want  []ManeuverState
	}{
		{"leftmost lane drops LCL", 0, 3, []ManeuverState{StateKeepLane, StateLaneChangeRight}},
		{"middle lane keeps all", 1, 3, []ManeuverState{StateKeepLane, StateLaneChangeLeft, StateLaneChangeRight}},
		{"rightmost lane drops LCR", 2, 3, []ManeuverState{StateKeepLane, StateLaneChangeLeft}},
		{"single lane keeps only KL", 0, 1, []ManeuverState{StateKeepLane}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, candidateStates(tc.lane, tc.lanes))
		})
	}
}

func TestChooseState_NeverProposesIllegalLaneChange(t *testing.T) {
	// GIVEN a cost function that always prefers lane changes
	lovesLaneChanges := func(_ *Vehicle, traj Trajectory, _ Predictions) (float64, error) {
		if traj[len(traj)-1].Lane != traj[0].Lane {
			return 0, nil
		}
		return 1, nil
	}

	// THEN at the road edges the illegal direction is never chosen
	for lane, forbidden := range map[int]ManeuverState{0: StateLaneChangeLeft, 2: StateLaneChangeRight} {
		veh := configured(t, lane, 0, 10, 0)
		sel := NewStateSelector(lovesLaneChanges)

		state, err := sel.ChooseState(veh, Predictions{})

		require.NoError(t, err)
		assert.NotEqual(t, forbidden, state, "lane %d", lane)
	}
}

func TestChooseState_TieBreak_FixedOrder(t *testing.T) {
	// GIVEN numerically equal costs for every candidate
	veh := configured(t, 1, 0, 20, 0)
	sel := NewStateSelector(constantCost(7))

	// WHEN a state is chosen
	state, err := sel.ChooseState(veh, Predictions{})

	// THEN the first candidate in [KL, LCL, LCR] wins
	require.NoError(t, err)
	assert.Equal(t, StateKeepLane, state)
}

func TestChooseState_PicksMinimumCost(t *testing.T) {
	// GIVEN a cost function that rewards moving toward lane 0
	towardLaneZero := func(_ *Vehicle, traj Trajectory, _ Predictions) (float64, error) {
		return float64(traj[len(traj)-1].Lane), nil
	}
	veh := configured(t, 1, 0, 20, 0)
	sel := NewStateSelector(towardLaneZero)

	state, err := sel.ChooseState(veh, Predictions{})

	require.NoError(t, err)
	assert.Equal(t, StateLaneChangeLeft, state)
}

func TestChooseState_PredictionIsolation(t *testing.T) {
	// GIVEN a shared forecast
	orig := Predictions{
		"a": {{Lane: 0, S: 4}, {Lane: 0, S: 6}, {Lane: 0, S: 8}, {Lane: 0, S: 10}, {Lane: 0, S: 12}, {Lane: 0, S: 14}},
		"b": {{Lane: 2, S: 40}, {Lane: 2, S: 42}, {Lane: 2, S: 44}, {Lane: 2, S: 46}, {Lane: 2, S: 48}, {Lane: 2, S: 50}},
	}
	want := orig.Clone()
	veh := configured(t, 1, 0, 10, 0)

	// costs are computed against the original forecast; record what each
	// candidate saw to prove no cross-candidate contamination
	seen := make([]Predictions, 0, 3)
	sel := NewStateSelector(func(_ *Vehicle, _ Trajectory, preds Predictions) (float64, error) {
		seen = append(seen, preds.Clone())
		return 0, nil
	})

	// WHEN the selector runs over all candidates
	_, err := sel.ChooseState(veh, orig)

	// THEN the caller's forecast is unchanged and every candidate saw the same one
	require.NoError(t, err)
	assert.Equal(t, want, orig)
	for i, s := range seen {
		assert.Equal(t, want, s, "candidate %d saw a mutated forecast", i)
	}
}

func TestChooseState_CostError_AbortsCycle(t *testing.T) {
	// GIVEN a cost function that fails on the second candidate
	boom := errors.New("boom")
	calls := 0
	sel := NewStateSelector(func(_ *Vehicle, _ Trajectory, _ Predictions) (float64, error) {
		calls++
		if calls == 2 {
			return 0, boom
		}
		return 0, nil
	})
	veh := configured(t, 1, 0, 10, 0)
	veh.State = StateConstantSpeed

	// WHEN planning runs
	err := veh.UpdateState(sel, Predictions{})

	// THEN the failure propagates and nothing is committed
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateConstantSpeed, veh.State)
}

func TestChooseState_NoCostFunction_Fails(t *testing.T) {
	veh := configured(t, 1, 0, 10, 0)
	sel := &StateSelector{}

	_, err := sel.ChooseState(veh, Predictions{})

	assert.Error(t, err)
}

func TestChooseState_Unconfigured_Fails(t *testing.T) {
	veh := NewVehicle(1, 0, 10, 0)
	sel := NewStateSelector(constantCost(0))

	_, err := sel.ChooseState(veh, Predictions{})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestChooseState_SinkObservesEveryCandidate(t *testing.T) {
	// GIVEN a selector with a decision sink
	veh := configured(t, 1, 0, 10, 0)
	sink := &recordingSink{}
	sel := NewStateSelector(constantCost(3))
	sel.Sink = sink

	// WHEN a cycle runs
	_, err := sel.ChooseState(veh, Predictions{})

	// THEN the sink saw one record per candidate, in enumeration order
	require.NoError(t, err)
	assert.Equal(t, []ManeuverState{StateKeepLane, StateLaneChangeLeft, StateLaneChangeRight}, sink.states)
	for i, traj := range sink.trajs {
		assert.Len(t, traj, DefaultTrajectoryHorizon+1, "trajectory %d", i)
	}
	assert.Equal(t, []float64{3, 3, 3}, sink.costs)
}

func TestChooseState_CustomHorizon(t *testing.T) {
	veh := configured(t, 1, 0, 10, 0)
	sink := &recordingSink{}
	sel := NewStateSelector(constantCost(0))
	sel.Sink = sink
	sel.Horizon = 2

	_, err := sel.ChooseState(veh, Predictions{})

	require.NoError(t, err)
	require.NotEmpty(t, sink.trajs)
	assert.Len(t, sink.trajs[0], 3)
}

func TestChooseState_InfiniteCostStillComparable(t *testing.T) {
	// +Inf is total-ordered against finite costs; the finite candidate wins
	veh := configured(t, 1, 0, 10, 0)
	sel := NewStateSelector(func(_ *Vehicle, traj Trajectory, _ Predictions) (float64, error) {
		if traj[len(traj)-1].Lane == 2 {
			return 5, nil
		}
		return math.Inf(1), nil
	})

	state, err := sel.ChooseState(veh, Predictions{})

	require.NoError(t, err)
	assert.Equal(t, StateLaneChangeRight, state)
}
