// Package trace provides decision-trace recording for planning-cycle
// analysis. This package has no dependencies on planner/; it stores pure
// data types.
package trace

// Point is one snapshot of a rolled-out trajectory.
type Point struct {
	Lane  int
	S     float64
	V     float64
	A     float64
	State string
}

// DecisionRecord captures a single candidate evaluation: the maneuver that
// was simulated, the trajectory it produced, and the cost it scored.
type DecisionRecord struct {
	Cycle      int
	State      string
	Cost       float64
	Trajectory []Point
}
