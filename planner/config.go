package planner

import "fmt"

// Default values for the two geometry constants of RoadConfig. Applied by
// Configure when the corresponding field is left zero.
const (
	// DefaultVehicleLength is the longitudinal extent used by collision checks.
	DefaultVehicleLength = 1.0
	// DefaultPreferredBuffer is the minimum gap to keep behind a lead vehicle.
	DefaultPreferredBuffer = 6.0
)

// RoadConfig groups the road parameters the harness supplies via Configure.
// It is an explicit immutable value: the Vehicle keeps its own copy and
// nothing mutates it after configuration.
type RoadConfig struct {
	TargetSpeed     float64 `yaml:"speed_limit"`      // speed the ego tries to hold (must be > 0)
	MaxAcceleration float64 `yaml:"max_acceleration"` // hard acceleration magnitude limit (must be > 0)
	LanesAvailable  int     `yaml:"num_lanes"`        // lane indices run [0, LanesAvailable)
	GoalS           float64 `yaml:"goal_s"`           // longitudinal goal position
	GoalLane        int     `yaml:"goal_lane"`        // goal lane index
	Length          float64 `yaml:"vehicle_length"`   // collision extent (0 = DefaultVehicleLength)
	PreferredBuffer float64 `yaml:"preferred_buffer"` // lead-vehicle gap (0 = DefaultPreferredBuffer)
}

// withDefaults returns a copy with the geometry constants filled in.
func (c RoadConfig) withDefaults() RoadConfig {
	if c.Length == 0 {
		c.Length = DefaultVehicleLength
	}
	if c.PreferredBuffer == 0 {
		c.PreferredBuffer = DefaultPreferredBuffer
	}
	return c
}

// Validate checks that all parameter ranges in the config are usable.
func (c RoadConfig) Validate() error {
	if c.LanesAvailable <= 0 {
		return fmt.Errorf("num_lanes must be positive, got %d", c.LanesAvailable)
	}
	if c.TargetSpeed <= 0 {
		return fmt.Errorf("speed_limit must be positive, got %f", c.TargetSpeed)
	}
	if c.MaxAcceleration <= 0 {
		return fmt.Errorf("max_acceleration must be positive, got %f", c.MaxAcceleration)
	}
	if c.GoalLane < 0 || c.GoalLane >= c.LanesAvailable {
		return fmt.Errorf("goal_lane %d outside [0, %d)", c.GoalLane, c.LanesAvailable)
	}
	if c.Length < 0 {
		return fmt.Errorf("vehicle_length must be non-negative, got %f", c.Length)
	}
	if c.PreferredBuffer < 0 {
		return fmt.Errorf("preferred_buffer must be non-negative, got %f", c.PreferredBuffer)
	}
	return nil
}
