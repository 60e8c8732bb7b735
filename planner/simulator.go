package planner

// DefaultTrajectoryHorizon is the number of rollout steps per candidate
// maneuver when the selector is not given an explicit horizon.
const DefaultTrajectoryHorizon = 5

// trajectoryForState rolls the vehicle forward under a hypothetical maneuver
// state and returns the resulting trajectory of horizon+1 snapshots
// (including the initial one). The call is observationally side-effect-free
// on the vehicle: it is restored to its pre-rollout snapshot before return.
//
// Each step restores the vehicle from the initial snapshot (forcing the
// candidate state), realizes the state against the predictions as they stand
// at that simulated time, advances one time unit, and records a snapshot.
// The predictions lose their head waypoints step by step, so the caller must
// pass a private Clone, never the value shared with other candidates.
func (v *Vehicle) trajectoryForState(cfg RoadConfig, state ManeuverState, preds Predictions, horizon int) Trajectory {
	snap := v.Snapshot()
	v.State = state

	traj := make(Trajectory, 0, horizon+1)
	traj = append(traj, snap)
	for i := 0; i < horizon; i++ {
		v.Restore(snap)
		v.State = state
		v.realizeState(cfg, preds)
		v.assertLaneBounds(cfg)
		v.Advance(1)
		traj = append(traj, v.Snapshot())
		preds.advance()
	}

	v.Restore(snap)
	return traj
}
