package road

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_SameSubsystem_ReturnsCachedInstance(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))

	first := p.ForSubsystem(SubsystemTraffic)
	second := p.ForSubsystem(SubsystemTraffic)

	assert.Same(t, first, second)
}

func TestPartitionedRNG_SameKey_SameDraws(t *testing.T) {
	// GIVEN two RNGs built from the same key
	a := NewPartitionedRNG(NewSimulationKey(7)).ForSubsystem(SubsystemTraffic)
	b := NewPartitionedRNG(NewSimulationKey(7)).ForSubsystem(SubsystemTraffic)

	// THEN their draw sequences are identical
	for i := 0; i < 100; i++ {
		if got, want := a.Int63(), b.Int63(); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestPartitionedRNG_Subsystems_AreIsolated(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(7))

	traffic := p.ForSubsystem(SubsystemTraffic)
	identity := p.ForSubsystem(SubsystemIdentity)

	// identical first draws across isolated subsystems would defeat the
	// per-subsystem derivation; the probability of a chance match is negligible
	assert.NotEqual(t, traffic.Int63(), identity.Int63())
}

func TestPartitionedRNG_Key_RoundTrips(t *testing.T) {
	key := NewSimulationKey(1234)

	assert.Equal(t, key, NewPartitionedRNG(key).Key())
}
