// Package cost provides reference cost functions for scoring candidate
// trajectories. The planner treats the cost function as an opaque
// collaborator; this package supplies the default weighted implementation the
// CLI harness wires in.
package cost

import (
	"errors"
	"math"

	"github.com/behavior-sim/behavior-sim/planner"
)

// Weights scales the individual cost components. Components are summed; a
// larger weight makes its concern dominate the comparison.
type Weights struct {
	Collision    float64 // predicted overlap with another vehicle
	Buffer       float64 // closest approach inside the preferred buffer
	Inefficiency float64 // final speed below target
	LaneOffset   float64 // final lane distance from the goal lane
}

// DefaultWeights orders the components by severity: collisions dominate
// buffer violations, which dominate speed and lane preferences.
func DefaultWeights() Weights {
	return Weights{
		Collision:    1e6,
		Buffer:       1e4,
		Inefficiency: 1e2,
		LaneOffset:   1e3,
	}
}

// New builds a planner.CostFunc from the given weights. The function is pure
// and deterministic: identical inputs always produce the identical score.
func New(w Weights) planner.CostFunc {
	return func(v *planner.Vehicle, traj planner.Trajectory, preds planner.Predictions) (float64, error) {
		if len(traj) == 0 {
			return 0, errors.New("cost: empty trajectory")
		}
		cfg, err := v.Config()
		if err != nil {
			return 0, err
		}

		total := 0.0
		total += w.Collision * collisionComponent(cfg, traj, preds)
		total += w.Buffer * bufferComponent(cfg, traj, preds)
		total += w.Inefficiency * inefficiencyComponent(cfg, traj)
		total += w.LaneOffset * laneOffsetComponent(cfg, traj)
		return total, nil
	}
}

// closestApproach returns the smallest same-lane longitudinal gap between the
// trajectory and any predicted vehicle position at the matching time step.
// Returns +Inf when no vehicle shares a lane with the trajectory.
func closestApproach(traj planner.Trajectory, preds planner.Predictions) float64 {
	closest := math.Inf(1)
	for t, snap := range traj {
		for _, wps := range preds {
			if t >= len(wps) {
				continue
			}
			if wps[t].Lane != snap.Lane {
				continue
			}
			if gap := math.Abs(wps[t].S - snap.S); gap < closest {
				closest = gap
			}
		}
	}
	return closest
}

// collisionComponent is 1 when the trajectory overlaps another vehicle within
// one vehicle length at any step, 0 otherwise.
func collisionComponent(cfg planner.RoadConfig, traj planner.Trajectory, preds planner.Predictions) float64 {
	if closestApproach(traj, preds) <= cfg.Length {
		return 1
	}
	return 0
}

// bufferComponent grows from 0 to 1 as the closest approach shrinks from the
// preferred buffer down to touching distance.
func bufferComponent(cfg planner.RoadConfig, traj planner.Trajectory, preds planner.Predictions) float64 {
	closest := closestApproach(traj, preds)
	if math.IsInf(closest, 1) || closest >= cfg.PreferredBuffer {
		return 0
	}
	if closest <= cfg.Length {
		return 1
	}
	return (cfg.PreferredBuffer - closest) / (cfg.PreferredBuffer - cfg.Length)
}

// inefficiencyComponent penalizes ending the rollout below target speed,
// quadratically in the relative shortfall.
func inefficiencyComponent(cfg planner.RoadConfig, traj planner.Trajectory) float64 {
	final := traj[len(traj)-1]
	shortfall := (cfg.TargetSpeed - final.V) / cfg.TargetSpeed
	if shortfall < 0 {
		shortfall = 0
	}
	return shortfall * shortfall
}

// laneOffsetComponent penalizes ending the rollout away from the goal lane,
// one unit per lane of offset.
func laneOffsetComponent(cfg planner.RoadConfig, traj planner.Trajectory) float64 {
	final := traj[len(traj)-1]
	return math.Abs(float64(final.Lane - cfg.GoalLane))
}
