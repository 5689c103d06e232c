package cmd

import (
	"fmt"
	"strings"

	"github.com/egarcialopez2014/service-desk-simulator/sim"
)

// FormatReport renders an aggregate result as a plain-text report. It reads
// only the public fields of AggregateResult; no simulation logic lives here.
func FormatReport(r sim.AggregateResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nMonte Carlo Simulation Report\n")
	fmt.Fprintf(&sb, "=============================\n\n")
	fmt.Fprintf(&sb, "Scenario: %s\n", r.ScenarioName)
	fmt.Fprintf(&sb, "Completed replications: %d\n\n", r.Replications)

	fmt.Fprintf(&sb, "Key Metrics (95%% Confidence Intervals):\n")
	fmt.Fprintf(&sb, "--------------------------------------\n")
	fmt.Fprintf(&sb, "Average Wait Time: %.2f minutes (%.2f - %.2f)\n",
		r.MeanWait.Mean, r.MeanWait.Lower, r.MeanWait.Upper)
	fmt.Fprintf(&sb, "95th Percentile Wait Time: %.2f minutes (%.2f - %.2f)\n",
		r.P95Wait.Mean, r.P95Wait.Lower, r.P95Wait.Upper)
	fmt.Fprintf(&sb, "Maximum Wait Time: %.2f minutes (%.2f - %.2f)\n",
		r.MaxWait.Mean, r.MaxWait.Lower, r.MaxWait.Upper)
	fmt.Fprintf(&sb, "Average Queue Length: %.2f customers (%.2f - %.2f)\n",
		r.MeanQueueLength.Mean, r.MeanQueueLength.Lower, r.MeanQueueLength.Upper)
	fmt.Fprintf(&sb, "Desk Utilization: %.1f%% (%.1f%% - %.1f%%)\n",
		r.DeskUtilization.Mean*100, r.DeskUtilization.Lower*100, r.DeskUtilization.Upper*100)
	fmt.Fprintf(&sb, "Service Level (<=5 min): %.1f%% (%.1f%% - %.1f%%)\n\n",
		r.ServiceLevel5Min.Mean*100, r.ServiceLevel5Min.Lower*100, r.ServiceLevel5Min.Upper*100)

	fmt.Fprintf(&sb, "Customer Statistics:\n")
	fmt.Fprintf(&sb, "-------------------\n")
	fmt.Fprintf(&sb, "Average Customers per Day: %.1f ± %.1f\n",
		r.TotalCustomersMean, r.TotalCustomersStd)

	return sb.String()
}
