package sim

import (
	"hash/fnv"
	"math/rand"
)

// ReplicationKey is the seed identity of one replication. Identical keys
// with an identical scenario reproduce the replication bit for bit, which
// is what makes a Monte Carlo run replayable from its seed list.
type ReplicationKey int64

// NewReplicationKey creates a ReplicationKey from a seed value.
func NewReplicationKey(seed int64) ReplicationKey {
	return ReplicationKey(seed)
}

const (
	// SubsystemArrivals feeds arrival-time generation. It consumes the
	// master seed directly, so the arrival pattern depends on nothing but
	// the replication's seed.
	SubsystemArrivals = "arrivals"

	// SubsystemService feeds service-duration sampling. Kept on its own
	// stream so the number of arrival draws consumed does not shift the
	// service-time sequence.
	SubsystemService = "service"

	// SubsystemSeeds is where the parallel runner draws per-replication
	// seeds from.
	SubsystemSeeds = "seeds"
)

// PartitionedRNG hands out one deterministic *rand.Rand per named subsystem,
// all derived from a single master key. Streams for different names never
// interleave: SubsystemArrivals seeds from the key itself, every other name
// seeds from the key XORed with an FNV-1a hash of the name, so adding a new
// subsystem never disturbs existing ones.
//
// Not safe for concurrent use; a replication owns its instance and drives it
// from one goroutine.
type PartitionedRNG struct {
	key        ReplicationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a ReplicationKey.
func NewPartitionedRNG(key ReplicationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG for the named subsystem, creating and caching
// it on first use. Repeat calls with the same name return the same instance;
// the result is never nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key)
	if name != SubsystemArrivals {
		derivedSeed ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the ReplicationKey this PartitionedRNG was created with.
func (p *PartitionedRNG) Key() ReplicationKey {
	return p.key
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
