package planner

// constantCost returns a cost function that scores every candidate the same,
// so selection falls back to the fixed enumeration order.
func constantCost(c float64) CostFunc {
	return func(_ *Vehicle, _ Trajectory, _ Predictions) (float64, error) {
		return c, nil
	}
}

// recordingSink captures every decision the selector reports.
type recordingSink struct {
	states []ManeuverState
	trajs  []Trajectory
	costs  []float64
}

func (rs *recordingSink) RecordDecision(state ManeuverState, traj Trajectory, cost float64) {
	rs.states = append(rs.states, state)
	rs.trajs = append(rs.trajs, traj)
	rs.costs = append(rs.costs, cost)
}
