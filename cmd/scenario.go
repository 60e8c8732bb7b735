package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/behavior-sim/behavior-sim/planner"
)

// EgoStart describes the ego vehicle's initial kinematic state.
type EgoStart struct {
	Lane int     `yaml:"lane"`
	S    float64 `yaml:"s"`
	V    float64 `yaml:"v"`
	A    float64 `yaml:"a"`
}

// TrafficPlacement describes one explicitly placed traffic vehicle.
type TrafficPlacement struct {
	ID   string  `yaml:"id"`
	Lane int     `yaml:"lane"`
	S    float64 `yaml:"s"`
	V    float64 `yaml:"v"`
}

// Scenario represents the full scenario YAML structure: road parameters, ego
// start, explicit traffic, and cycle count. Explicit traffic takes precedence
// over random generation.
type Scenario struct {
	Road    planner.RoadConfig `yaml:"road"`
	Ego     EgoStart           `yaml:"ego"`
	Traffic []TrafficPlacement `yaml:"traffic"`
	Cycles  int                `yaml:"cycles"`
}

// LoadScenario reads and parses a scenario YAML file. Parsing is strict:
// unknown fields are errors, so typos in scenario files fail loudly instead
// of silently falling back to defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks the scenario beyond what RoadConfig.Validate covers:
// placements must sit on the road and carry unique identifiers.
func (sc *Scenario) Validate() error {
	if err := sc.Road.Validate(); err != nil {
		return err
	}
	if sc.Cycles < 0 {
		return fmt.Errorf("cycles must be non-negative, got %d", sc.Cycles)
	}
	if sc.Ego.Lane < 0 || sc.Ego.Lane >= sc.Road.LanesAvailable {
		return fmt.Errorf("ego lane %d outside [0, %d)", sc.Ego.Lane, sc.Road.LanesAvailable)
	}
	seen := make(map[string]bool, len(sc.Traffic))
	for i, tp := range sc.Traffic {
		if tp.ID == "" {
			return fmt.Errorf("traffic[%d]: missing id", i)
		}
		if seen[tp.ID] {
			return fmt.Errorf("traffic[%d]: duplicate id %q", i, tp.ID)
		}
		seen[tp.ID] = true
		if tp.Lane < 0 || tp.Lane >= sc.Road.LanesAvailable {
			return fmt.Errorf("traffic[%d] (%s): lane %d outside [0, %d)", i, tp.ID, tp.Lane, sc.Road.LanesAvailable)
		}
	}
	return nil
}
