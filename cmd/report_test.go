package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egarcialopez2014/service-desk-simulator/sim"
)

func TestFormatReport_ContainsKeyFields(t *testing.T) {
	agg := sim.AggregateResult{
		ScenarioName: "Weekday Basic - 3 Desks",
		Replications: 128,
		MeanWait:     sim.MetricSummary{Mean: 1.25, Lower: 1.10, Upper: 1.40},
		P95Wait:      sim.MetricSummary{Mean: 4.5, Lower: 4.1, Upper: 4.9},
	}
	report := FormatReport(agg)

	assert.Contains(t, report, "Weekday Basic - 3 Desks")
	assert.Contains(t, report, "Completed replications: 128")
	assert.Contains(t, report, "Average Wait Time: 1.25 minutes (1.10 - 1.40)")
	assert.Contains(t, report, "95th Percentile Wait Time: 4.50 minutes")
}

func TestFormatReport_EndToEnd(t *testing.T) {
	scenario := ScenarioWeekdaySmall()
	scenario.NumReplications = 25

	runner := sim.NewMonteCarloRunner(2, 42)
	agg, err := runner.Run(scenario, false)
	require.NoError(t, err)

	report := FormatReport(agg)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(report), "Monte Carlo Simulation Report"))
	assert.Contains(t, report, scenario.Name)
	assert.Contains(t, report, "Completed replications: 25")
}
