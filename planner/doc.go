// Package planner provides the discrete behavior-planning engine for a single
// ego vehicle on a multi-lane roadway.
//
// # Reading Guide
//
// Start with these three files to understand the planning kernel:
//   - vehicle.go: the Vehicle entity, its configuration, and the planning entry point
//   - realizer.go: per-state acceleration/lane realization (the maneuver FSM effects)
//   - selector.go: candidate enumeration, trajectory scoring, and the arg-min commit
//
// # Architecture
//
// The planner package holds the core algorithms; collaborators live in
// sub-packages:
//   - planner/cost/: cost functions that score candidate trajectories
//   - planner/road/: the outer harness (traffic, predictions, cycle loop)
//   - planner/trace/: decision-trace recording
//
// Each planning cycle, the StateSelector enumerates the legal maneuver states,
// rolls the vehicle forward under each one on a private copy of the traffic
// predictions, scores the resulting trajectory with a CostFunc, and commits
// the cheapest state back onto the vehicle. Rollout is speculative: the
// vehicle is always restored to its pre-simulation snapshot afterward.
//
// # Key Extension Points
//
//   - CostFunc: scores a (vehicle, trajectory, predictions) triple; lower is better
//   - DecisionSink: receives one (state, trajectory, cost) record per evaluated candidate
package planner
