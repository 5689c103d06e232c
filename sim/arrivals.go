package sim

import (
	"math"
	"math/rand"
	"sort"
)

// DefaultServiceTimeCV is the default coefficient of variation (std/mean)
// for lognormal service durations. Higher values mean more variable service.
const DefaultServiceTimeCV = 0.5

// ArrivalGenerator produces one arrival realization per replication:
// an ascending sequence of arrival timestamps over the operating window,
// plus a matching sequence of service durations. All times are in minutes
// from the start of the operating window.
//
// Arrivals follow a piecewise-homogeneous Poisson process: within each hour
// the rate is constant and hour boundaries are the only non-stationarity.
// This deliberately approximates a time-varying Poisson process; scenario
// rate tunings assume the per-hour approximation, so it must not be swapped
// for non-homogeneous thinning.
type ArrivalGenerator struct {
	rng *PartitionedRNG
}

// NewArrivalGenerator creates a generator whose randomness is fully
// determined by seed. Two generators with the same seed produce
// bit-identical sequences for the same scenario.
func NewArrivalGenerator(seed int64) *ArrivalGenerator {
	return &ArrivalGenerator{rng: NewPartitionedRNG(NewReplicationKey(seed))}
}

// GenerateArrivals returns sorted customer arrival times for the scenario.
// For each hour h in [Start, End): draw a count from Poisson(rate[h]), then
// place that many arrivals uniformly within the hour's 60-minute window.
// Hours with no configured rate (or rate 0) contribute no arrivals.
func (g *ArrivalGenerator) GenerateArrivals(scenario *ScenarioConfig) []float64 {
	rng := g.rng.ForSubsystem(SubsystemArrivals)
	arrivals := []float64{}

	start, end := scenario.OperatingHours.Start, scenario.OperatingHours.End
	for hour := start; hour < end; hour++ {
		rate := scenario.ArrivalRates[hour]
		if rate <= 0 {
			continue
		}
		n := poissonRand(rng, rate)
		hourStart := float64(hour-start) * 60.0
		for i := 0; i < n; i++ {
			arrivals = append(arrivals, hourStart+rng.Float64()*60.0)
		}
	}

	sort.Float64s(arrivals)
	return arrivals
}

// GenerateServiceTimes returns n independent lognormal service durations
// with the given mean and coefficient of variation. Pass
// DefaultServiceTimeCV unless the scenario calls for something else.
//
// Parameterization: sigma = sqrt(ln(cv²+1)), mu = ln(mean) - sigma²/2, so
// the distribution's mean is exactly mean and its std/mean ratio is cv.
// Lognormal is used instead of exponential for its realistic right skew
// with bounded relative variance; every sample is strictly positive.
func (g *ArrivalGenerator) GenerateServiceTimes(n int, mean, cv float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	rng := g.rng.ForSubsystem(SubsystemService)

	sigma := math.Sqrt(math.Log(cv*cv + 1))
	mu := math.Log(mean) - sigma*sigma/2

	times := make([]float64, n)
	for i := range times {
		times[i] = math.Exp(mu + sigma*rng.NormFloat64())
	}
	return times
}

// poissonRand samples from Poisson(lambda) by counting unit-rate exponential
// inter-arrivals until their sum exceeds lambda. Exact for all lambda and
// free of the underflow the classic product-of-uniforms method hits for
// large means.
func poissonRand(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	n := 0
	for t := rng.ExpFloat64(); t < lambda; t += rng.ExpFloat64() {
		n++
	}
	return n
}

// ArrivalPattern summarizes the expected demand profile of a scenario.
type ArrivalPattern struct {
	TotalExpectedArrivals float64 // sum of hourly rates over the window
	PeakRate              float64 // highest hourly rate
	PeakHour              int     // hour of day with the highest rate (-1 if none)
	AverageRate           float64 // mean rate across the window
	WindowHours           int     // operating window length in hours
}

// AnalyzeArrivalPattern computes expected-demand statistics for a scenario
// without sampling. Useful for sanity-checking rate tables before a run.
func AnalyzeArrivalPattern(scenario *ScenarioConfig) ArrivalPattern {
	start, end := scenario.OperatingHours.Start, scenario.OperatingHours.End
	pattern := ArrivalPattern{PeakHour: -1, WindowHours: end - start}

	for hour := start; hour < end; hour++ {
		rate := scenario.ArrivalRates[hour]
		pattern.TotalExpectedArrivals += rate
		if rate > pattern.PeakRate {
			pattern.PeakRate = rate
			pattern.PeakHour = hour
		}
	}
	if pattern.WindowHours > 0 {
		pattern.AverageRate = pattern.TotalExpectedArrivals / float64(pattern.WindowHours)
	}
	return pattern
}
