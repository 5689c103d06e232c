package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_SameSeedSameStream(t *testing.T) {
	a := NewPartitionedRNG(NewReplicationKey(42)).ForSubsystem(SubsystemArrivals)
	b := NewPartitionedRNG(NewReplicationKey(42)).ForSubsystem(SubsystemArrivals)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestPartitionedRNG_SubsystemsIsolated(t *testing.T) {
	p := NewPartitionedRNG(NewReplicationKey(42))
	arrivals := p.ForSubsystem(SubsystemArrivals)
	service := p.ForSubsystem(SubsystemService)

	// Draws on one stream must not perturb the other: a fresh RNG with the
	// service subsystem's derived seed produces the same sequence even after
	// the arrivals stream has been consumed.
	for i := 0; i < 1000; i++ {
		arrivals.Float64()
	}
	fresh := NewPartitionedRNG(NewReplicationKey(42)).ForSubsystem(SubsystemService)
	for i := 0; i < 100; i++ {
		assert.Equal(t, fresh.Int63(), service.Int63())
	}
}

func TestPartitionedRNG_CachesInstances(t *testing.T) {
	p := NewPartitionedRNG(NewReplicationKey(7))
	assert.Same(t, p.ForSubsystem(SubsystemArrivals), p.ForSubsystem(SubsystemArrivals))
	assert.Equal(t, NewReplicationKey(7), p.Key())
}

func TestPartitionedRNG_DifferentSeedsDiverge(t *testing.T) {
	a := NewPartitionedRNG(NewReplicationKey(1)).ForSubsystem(SubsystemArrivals)
	b := NewPartitionedRNG(NewReplicationKey(2)).ForSubsystem(SubsystemArrivals)
	same := true
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			same = false
		}
	}
	assert.False(t, same, "streams for different seeds should diverge")
}
