package sim

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// percentile computes the p-th percentile (0-100) of sorted input using
// linear interpolation between closest ranks. Input must be sorted.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// percentileOf sorts a copy of values and returns their p-th percentile.
func percentileOf(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentile(sorted, p)
}

// MetricSummary is one aggregated metric: the mean across replications and
// its 95% confidence interval bounds.
type MetricSummary struct {
	Mean  float64
	Lower float64
	Upper float64
}

// summarize computes the mean and 95% confidence interval of values.
// With n >= 2 the interval is mean ± t(0.975, n-1) * s/sqrt(n) using the
// unbiased sample standard deviation; with n == 1 it collapses to
// (mean, mean). Callers guarantee values is non-empty.
func summarize(values []float64) MetricSummary {
	mean := stat.Mean(values, nil)
	n := len(values)
	if n < 2 {
		return MetricSummary{Mean: mean, Lower: mean, Upper: mean}
	}

	stdErr := stat.StdDev(values, nil) / math.Sqrt(float64(n))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	margin := tDist.Quantile(0.975) * stdErr

	return MetricSummary{Mean: mean, Lower: mean - margin, Upper: mean + margin}
}
