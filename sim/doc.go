// Package sim provides the core discrete-event simulation engine for the
// service desk simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - arrivals.go: arrival and service-time generation (piecewise Poisson + lognormal)
//   - simulator.go: the multi-desk queue simulation for a single replication
//   - montecarlo.go: the replication driver and confidence-interval aggregation
//
// # Architecture
//
// A ScenarioConfig (config.go) describes one scenario: hourly arrival rates,
// a constant desk count or an hourly desk schedule, mean service time, and
// the operating window. Each Monte Carlo replication owns its own seeded
// RNG (rng.go), generates one arrival realization, feeds it through the
// QueueSimulator, and emits one ReplicationResult. The MonteCarloRunner
// collects replication results, sequentially or via a worker pool, and
// aggregates them into an AggregateResult with 95% confidence intervals
// (result.go, stats.go).
//
// Replications are embarrassingly parallel: no state is shared between them
// other than the read-only scenario, so the engine needs no locking.
package sim
