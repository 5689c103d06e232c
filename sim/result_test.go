package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_EmptyIsError(t *testing.T) {
	_, err := Aggregate("x", nil)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestAggregate_SingleReplicationCollapsesIntervals(t *testing.T) {
	results := []ReplicationResult{{
		MeanWait: 2.0, MaxWait: 9.0, P95Wait: 7.0,
		MeanQueueLength: 1.5, DeskUtilization: 0.6,
		ServiceLevel5Min: 0.9, TotalCustomers: 30,
	}}
	agg, err := Aggregate("solo", results)
	require.NoError(t, err)

	assert.Equal(t, "solo", agg.ScenarioName)
	assert.Equal(t, 1, agg.Replications)
	for _, m := range []MetricSummary{
		agg.MeanWait, agg.MaxWait, agg.P95Wait, agg.MeanQueueLength,
		agg.DeskUtilization, agg.ServiceLevel5Min, agg.TotalCustomers,
	} {
		assert.Equal(t, m.Mean, m.Lower)
		assert.Equal(t, m.Mean, m.Upper)
	}
	assert.Equal(t, 30.0, agg.TotalCustomersMean)
	assert.Equal(t, 0.0, agg.TotalCustomersStd)
}

func TestAggregate_MeansAndStd(t *testing.T) {
	results := []ReplicationResult{
		{MeanWait: 2.0, TotalCustomers: 10},
		{MeanWait: 4.0, TotalCustomers: 20},
	}
	agg, err := Aggregate("pair", results)
	require.NoError(t, err)

	assert.Equal(t, 2, agg.Replications)
	assert.InDelta(t, 3.0, agg.MeanWait.Mean, 1e-12)
	assert.LessOrEqual(t, agg.MeanWait.Lower, agg.MeanWait.Mean)
	assert.GreaterOrEqual(t, agg.MeanWait.Upper, agg.MeanWait.Mean)
	assert.InDelta(t, 15.0, agg.TotalCustomersMean, 1e-12)
	assert.InDelta(t, math.Sqrt(50), agg.TotalCustomersStd, 1e-12)
}
