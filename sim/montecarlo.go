package sim

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// MonteCarloRunner executes a scenario's replications and aggregates their
// results. Two execution modes:
//
//   - Sequential: replications run on the calling goroutine with seeds
//     0..N-1. Fully reproducible; meant for debugging and small N.
//   - Parallel: replications are distributed over a fixed-size worker pool
//     with per-replication seeds drawn from the runner's own seed stream.
//
// Replications are independent: each owns its RNG and simulation state, and
// only the read-only scenario is shared, so no locking is needed. The runner
// blocks until every dispatched replication has completed or failed; there
// is no cancellation or timeout in this design.
type MonteCarloRunner struct {
	workers int
	rng     *PartitionedRNG
}

// NewMonteCarloRunner creates a runner with the given worker-pool size for
// parallel mode (values < 1 default to runtime.NumCPU()). masterSeed feeds
// the stream that parallel-mode replication seeds are drawn from.
func NewMonteCarloRunner(workers int, masterSeed int64) *MonteCarloRunner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &MonteCarloRunner{
		workers: workers,
		rng:     NewPartitionedRNG(NewReplicationKey(masterSeed)),
	}
}

// Run executes scenario.NumReplications replications and aggregates them.
// In parallel mode a replication that panics is logged and excluded; the run
// fails only when zero replications succeed, and AggregateResult.Replications
// reflects the completed count.
func (r *MonteCarloRunner) Run(scenario *ScenarioConfig, parallel bool) (AggregateResult, error) {
	if err := scenario.Validate(); err != nil {
		return AggregateResult{}, fmt.Errorf("invalid scenario: %w", err)
	}

	var results []ReplicationResult
	if parallel && scenario.NumReplications > 1 {
		results = r.runParallel(scenario)
	} else {
		results = r.runSequential(scenario)
	}

	if len(results) == 0 {
		return AggregateResult{}, fmt.Errorf("scenario %q: all %d replications failed: %w",
			scenario.Name, scenario.NumReplications, ErrNoResults)
	}
	return Aggregate(scenario.Name, results)
}

// RunAll runs every scenario in turn and returns results keyed by scenario
// name. Stops at the first scenario whose run fails outright.
func (r *MonteCarloRunner) RunAll(scenarios []*ScenarioConfig, parallel bool) (map[string]AggregateResult, error) {
	results := make(map[string]AggregateResult, len(scenarios))
	for _, scenario := range scenarios {
		logrus.Infof("Running scenario: %s", scenario.Name)
		agg, err := r.Run(scenario, parallel)
		if err != nil {
			return nil, err
		}
		results[scenario.Name] = agg
	}
	return results, nil
}

// runSequential executes replications one at a time with seeds 0..N-1.
func (r *MonteCarloRunner) runSequential(scenario *ScenarioConfig) []ReplicationResult {
	results := make([]ReplicationResult, 0, scenario.NumReplications)
	for seed := int64(0); seed < int64(scenario.NumReplications); seed++ {
		results = append(results, NewQueueSimulator(seed).Simulate(scenario))
	}
	return results
}

// runParallel fans replications out over the worker pool. Each worker builds
// its own QueueSimulator per seed; a panicking replication is recovered,
// reported, and excluded from the result set rather than aborting siblings.
func (r *MonteCarloRunner) runParallel(scenario *ScenarioConfig) []ReplicationResult {
	n := scenario.NumReplications
	seedRNG := r.rng.ForSubsystem(SubsystemSeeds)
	seeds := make(chan int64, n)
	for i := 0; i < n; i++ {
		seeds <- seedRNG.Int63()
	}
	close(seeds)

	out := make(chan ReplicationResult, n)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seeds {
				runReplication(scenario, seed, out)
			}
		}()
	}
	wg.Wait()
	close(out)

	results := make([]ReplicationResult, 0, n)
	for res := range out {
		results = append(results, res)
	}
	return results
}

// runReplication executes one replication, converting a panic into a logged
// failure instead of a crashed worker.
func runReplication(scenario *ScenarioConfig, seed int64, out chan<- ReplicationResult) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.Errorf("replication with seed %d failed: %v", seed, rec)
		}
	}()
	out <- NewQueueSimulator(seed).Simulate(scenario)
}
