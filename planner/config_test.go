package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() RoadConfig {
	return RoadConfig{
		TargetSpeed:     20,
		MaxAcceleration: 10,
		LanesAvailable:  3,
		GoalS:           300,
		GoalLane:        0,
	}
}

func TestRoadConfig_Validate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RoadConfig)
	}{
		{"zero lanes", func(c *RoadConfig) { c.LanesAvailable = 0 }},
		{"negative lanes", func(c *RoadConfig) { c.LanesAvailable = -2 }},
		{"zero speed limit", func(c *RoadConfig) { c.TargetSpeed = 0 }},
		{"zero max acceleration", func(c *RoadConfig) { c.MaxAcceleration = 0 }},
		{"goal lane below road", func(c *RoadConfig) { c.GoalLane = -1 }},
		{"goal lane beyond road", func(c *RoadConfig) { c.GoalLane = 3 }},
		{"negative length", func(c *RoadConfig) { c.Length = -1 }},
		{"negative buffer", func(c *RoadConfig) { c.PreferredBuffer = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRoadConfig_Validate_Accepts(t *testing.T) {
	cfg := validConfig()
	cfg.Length = 1
	cfg.PreferredBuffer = 6

	assert.NoError(t, cfg.Validate())
}

func TestConfigure_AppliesGeometryDefaults(t *testing.T) {
	// GIVEN a config that leaves the geometry constants zero
	v := NewVehicle(0, 0, 0, 0)
	require.NoError(t, v.Configure(validConfig()))

	// THEN the stored config carries the defaults
	cfg, err := v.Config()
	require.NoError(t, err)
	assert.Equal(t, DefaultVehicleLength, cfg.Length)
	assert.Equal(t, DefaultPreferredBuffer, cfg.PreferredBuffer)
}

func TestConfigure_RejectsInvalid(t *testing.T) {
	v := NewVehicle(0, 0, 0, 0)
	bad := validConfig()
	bad.LanesAvailable = 0

	err := v.Configure(bad)

	assert.Error(t, err)
	// a failed Configure leaves the vehicle unconfigured
	_, err = v.Config()
	assert.ErrorIs(t, err, ErrNotConfigured)
}
