package planner

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when planning is attempted on a Vehicle before
// Configure has supplied the road parameters.
var ErrNotConfigured = errors.New("vehicle not configured")

// Vehicle is the planning subject. It is created once and persists across
// planning cycles; only Lane, S, V, A and State are mutated by planning, and
// only after a winning candidate has been chosen (speculative mutation during
// rollout is always undone).
type Vehicle struct {
	Lane  int
	S     float64
	V     float64
	A     float64
	State ManeuverState

	// cfg is nil until Configure is called. All planning paths fail with
	// ErrNotConfigured while it is unset.
	cfg *RoadConfig
}

// NewVehicle creates a Vehicle at the given lane/position/velocity/acceleration
// in the constant-speed state. Configure must be called before planning.
func NewVehicle(lane int, s, v, a float64) *Vehicle {
	return &Vehicle{
		Lane:  lane,
		S:     s,
		V:     v,
		A:     a,
		State: StateConstantSpeed,
	}
}

// Configure applies the road parameters. Called by the harness before
// planning begins; calling it again replaces the previous configuration.
func (v *Vehicle) Configure(cfg RoadConfig) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuring vehicle: %w", err)
	}
	v.cfg = &cfg
	return nil
}

// Config returns a copy of the active road configuration.
func (v *Vehicle) Config() (RoadConfig, error) {
	return v.requireConfig("reading config")
}

// requireConfig returns the active configuration or a wrapped
// ErrNotConfigured naming the failing operation.
func (v *Vehicle) requireConfig(op string) (RoadConfig, error) {
	if v.cfg == nil {
		return RoadConfig{}, fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}
	return *v.cfg, nil
}

// UpdateState runs one planning cycle: the selector scores every legal
// candidate maneuver against the supplied predictions and the winning state
// tag is committed onto the vehicle. Lane, position, velocity and
// acceleration are untouched; the next Realize call applies the chosen
// state's effects.
func (v *Vehicle) UpdateState(sel *StateSelector, preds Predictions) error {
	state, err := sel.ChooseState(v, preds)
	if err != nil {
		return fmt.Errorf("updating state: %w", err)
	}
	v.State = state
	return nil
}

// Realize applies the effect of the vehicle's current maneuver state,
// adjusting acceleration and, for lane-change states, the lane.
func (v *Vehicle) Realize(preds Predictions) error {
	cfg, err := v.requireConfig("realizing state")
	if err != nil {
		return err
	}
	v.realizeState(cfg, preds)
	v.assertLaneBounds(cfg)
	return nil
}

// Advance moves the vehicle dt time units forward under its current
// acceleration.
func (v *Vehicle) Advance(dt float64) {
	v.S += v.V * dt
	v.V += v.A * dt
}

// assertLaneBounds aborts loudly when realization has pushed the lane index
// outside the road. That is a planner defect, never a runtime condition to
// recover from, so it is not clamped.
func (v *Vehicle) assertLaneBounds(cfg RoadConfig) {
	if v.Lane < 0 || v.Lane >= cfg.LanesAvailable {
		panic(fmt.Sprintf("planner: lane %d outside [0, %d) after realizing %s", v.Lane, cfg.LanesAvailable, v.State))
	}
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("lane=%d s=%.2f v=%.2f a=%.2f state=%s", v.Lane, v.S, v.V, v.A, v.State)
}
