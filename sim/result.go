package sim

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrNoResults is returned when aggregation is attempted over zero completed
// replications. Aggregation never silently returns zeroed statistics.
var ErrNoResults = errors.New("no replication results to aggregate")

// ReplicationResult holds the performance statistics of a single replication.
// Times are minutes; queue lengths are sampled after each arrival (and each
// final-drain step), not time-weighted.
type ReplicationResult struct {
	ScenarioName     string
	MeanWait         float64
	MaxWait          float64
	P95Wait          float64
	MeanQueueLength  float64
	MaxQueueLength   int
	DeskUtilization  float64 // mean over desks that served >= 1 customer, in [0,1]
	ServiceLevel5Min float64 // fraction of customers waiting <= 5 minutes
	TotalCustomers   int
	TotalMinutes     float64 // operating window length in minutes
}

// AggregateResult holds Monte Carlo estimates across replications: per-metric
// means with 95% confidence intervals. Replications is the number that
// actually completed, which in parallel mode may be below the requested
// count if individual replications failed.
type AggregateResult struct {
	ScenarioName string
	Replications int

	MeanWait         MetricSummary
	MaxWait          MetricSummary
	P95Wait          MetricSummary
	MeanQueueLength  MetricSummary
	DeskUtilization  MetricSummary
	ServiceLevel5Min MetricSummary
	TotalCustomers   MetricSummary

	TotalCustomersMean float64
	TotalCustomersStd  float64 // unbiased sample standard deviation
}

// Aggregate folds per-replication results into means and 95% confidence
// intervals. Returns ErrNoResults for an empty input.
func Aggregate(scenarioName string, results []ReplicationResult) (AggregateResult, error) {
	if len(results) == 0 {
		return AggregateResult{}, ErrNoResults
	}

	n := len(results)
	meanWaits := make([]float64, n)
	maxWaits := make([]float64, n)
	p95Waits := make([]float64, n)
	queueLengths := make([]float64, n)
	utilizations := make([]float64, n)
	serviceLevels := make([]float64, n)
	totalCustomers := make([]float64, n)
	for i, r := range results {
		meanWaits[i] = r.MeanWait
		maxWaits[i] = r.MaxWait
		p95Waits[i] = r.P95Wait
		queueLengths[i] = r.MeanQueueLength
		utilizations[i] = r.DeskUtilization
		serviceLevels[i] = r.ServiceLevel5Min
		totalCustomers[i] = float64(r.TotalCustomers)
	}

	agg := AggregateResult{
		ScenarioName:       scenarioName,
		Replications:       n,
		MeanWait:           summarize(meanWaits),
		MaxWait:            summarize(maxWaits),
		P95Wait:            summarize(p95Waits),
		MeanQueueLength:    summarize(queueLengths),
		DeskUtilization:    summarize(utilizations),
		ServiceLevel5Min:   summarize(serviceLevels),
		TotalCustomers:     summarize(totalCustomers),
		TotalCustomersMean: stat.Mean(totalCustomers, nil),
	}
	if n >= 2 {
		agg.TotalCustomersStd = stat.StdDev(totalCustomers, nil)
	}
	return agg, nil
}
