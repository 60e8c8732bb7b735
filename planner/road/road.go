// Package road implements the outer harness that drives the planner: it owns
// the traffic vehicles, forecasts their near-future positions, and runs the
// configure → predict → plan → realize → advance cycle.
package road

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/behavior-sim/behavior-sim/planner"
	"github.com/behavior-sim/behavior-sim/planner/trace"
)

// TrafficVehicle is a non-ego vehicle on the road. Traffic holds its speed
// constant; the harness forecasts it accordingly.
type TrafficVehicle struct {
	ID   string
	Lane int
	S    float64
	V    float64
}

// CycleResult records the committed outcome of one planning cycle.
type CycleResult struct {
	Cycle int
	State planner.ManeuverState
	Lane  int
	S     float64
	V     float64
	A     float64
}

// Road drives the planning loop for a single ego vehicle among traffic.
type Road struct {
	Ego      *planner.Vehicle
	Selector *planner.StateSelector
	Traffic  []*TrafficVehicle
	Trace    *trace.PlanningTrace

	cfg   planner.RoadConfig
	cycle int
}

// New configures the ego vehicle with cfg and wires the selector's decision
// sink to tr when tracing is enabled. tr may be nil.
func New(cfg planner.RoadConfig, ego *planner.Vehicle, sel *planner.StateSelector, tr *trace.PlanningTrace) (*Road, error) {
	if err := ego.Configure(cfg); err != nil {
		return nil, err
	}
	r := &Road{
		Ego:      ego,
		Selector: sel,
		Traffic:  make([]*TrafficVehicle, 0),
		Trace:    tr,
		cfg:      cfg,
	}
	if tr.Enabled() {
		sel.Sink = &traceSink{road: r}
	}
	return r, nil
}

// AddTraffic places a traffic vehicle on the road.
func (r *Road) AddTraffic(tv TrafficVehicle) {
	r.Traffic = append(r.Traffic, &tv)
}

// GenerateTraffic places n vehicles at random lanes, positions and speeds
// drawn from the harness RNG. Identifiers come from the identity subsystem so
// runs with the same SimulationKey reproduce the same IDs.
func (r *Road) GenerateTraffic(n int, rng *PartitionedRNG, maxS float64) {
	traffic := rng.ForSubsystem(SubsystemTraffic)
	identity := rng.ForSubsystem(SubsystemIdentity)
	for i := 0; i < n; i++ {
		id := uuid.Must(uuid.NewRandomFromReader(identity)).String()
		r.AddTraffic(TrafficVehicle{
			ID:   id,
			Lane: traffic.Intn(r.cfg.LanesAvailable),
			S:    traffic.Float64() * maxS,
			V:    traffic.Float64() * r.cfg.TargetSpeed,
		})
	}
}

// Predictions forecasts every traffic vehicle for the given number of steps,
// assuming constant speed. Index 0 is the current position.
func (r *Road) Predictions(horizon int) planner.Predictions {
	preds := make(planner.Predictions, len(r.Traffic))
	for _, tv := range r.Traffic {
		ghost := planner.NewVehicle(tv.Lane, tv.S, tv.V, 0)
		preds[tv.ID] = ghost.GeneratePredictions(horizon)
	}
	return preds
}

// Step runs one planning cycle: forecast traffic, plan, realize the committed
// maneuver, and advance the world one time unit.
func (r *Road) Step() (CycleResult, error) {
	preds := r.Predictions(planner.DefaultPredictionHorizon)

	if err := r.Ego.UpdateState(r.Selector, preds); err != nil {
		return CycleResult{}, fmt.Errorf("cycle %d: %w", r.cycle, err)
	}
	if err := r.Ego.Realize(preds); err != nil {
		return CycleResult{}, fmt.Errorf("cycle %d: %w", r.cycle, err)
	}
	r.Ego.Advance(1)
	for _, tv := range r.Traffic {
		tv.S += tv.V
	}

	result := CycleResult{
		Cycle: r.cycle,
		State: r.Ego.State,
		Lane:  r.Ego.Lane,
		S:     r.Ego.S,
		V:     r.Ego.V,
		A:     r.Ego.A,
	}
	logrus.Infof("[cycle %03d] %s -> %s", r.cycle, result.State, r.Ego)
	r.cycle++
	return result, nil
}

// Run executes the given number of planning cycles and returns their results.
// The first error aborts the run.
func (r *Road) Run(cycles int) ([]CycleResult, error) {
	results := make([]CycleResult, 0, cycles)
	for i := 0; i < cycles; i++ {
		result, err := r.Step()
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	logrus.Infof("[cycle %03d] Run ended", r.cycle)
	return results, nil
}

// traceSink bridges the selector's DecisionSink to the trace package,
// stamping each record with the current harness cycle.
type traceSink struct {
	road *Road
}

func (ts *traceSink) RecordDecision(state planner.ManeuverState, traj planner.Trajectory, cost float64) {
	points := make([]trace.Point, 0, len(traj))
	for _, snap := range traj {
		points = append(points, trace.Point{
			Lane:  snap.Lane,
			S:     snap.S,
			V:     snap.V,
			A:     snap.A,
			State: string(snap.State),
		})
	}
	ts.road.Trace.RecordDecision(trace.DecisionRecord{
		Cycle:      ts.road.cycle,
		State:      string(state),
		Cost:       cost,
		Trajectory: points,
	})
}
