package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/egarcialopez2014/service-desk-simulator/sim"
)

var (
	// CLI flags shared by the simulation subcommands
	logLevel     string // Log verbosity level
	masterSeed   int64  // Seed for parallel-mode replication seed drawing
	workers      int    // Worker pool size (0 = number of CPUs)
	sequential   bool   // Run replications sequentially with seeds 0..N-1
	scenarioFile string // Path to a YAML scenario file
	presetName   string // Name of a built-in scenario preset
	replications int    // Override for the scenario's replication count
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "service-desk-sim",
	Short: "Monte Carlo queue simulator for multi-desk service counters",
}

// runCmd executes one scenario and prints its report
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run Monte Carlo simulation for a single scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		scenario, err := resolveScenario()
		if err != nil {
			return err
		}
		if replications > 0 {
			scenario.NumReplications = replications
		}

		pattern := sim.AnalyzeArrivalPattern(scenario)
		logrus.Infof("Scenario %q: %.0f expected customers over %d hours (peak %.0f/h at hour %d)",
			scenario.Name, pattern.TotalExpectedArrivals, pattern.WindowHours, pattern.PeakRate, pattern.PeakHour)

		runner := sim.NewMonteCarloRunner(workers, masterSeed)
		result, err := runner.Run(scenario, !sequential)
		if err != nil {
			return err
		}
		fmt.Print(FormatReport(result))
		return nil
	},
}

// compareCmd runs several scenarios and prints their reports side by side
var compareCmd = &cobra.Command{
	Use:   "compare [scenario.yaml ...]",
	Short: "Run and compare multiple scenarios (built-in presets when no files given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		var scenarios []*sim.ScenarioConfig
		if len(args) == 0 {
			scenarios = PresetScenarios()
		} else {
			for _, path := range args {
				scenario, err := LoadScenario(path)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, scenario)
			}
		}
		for _, s := range scenarios {
			if replications > 0 {
				s.NumReplications = replications
			}
		}

		runner := sim.NewMonteCarloRunner(workers, masterSeed)
		results, err := runner.RunAll(scenarios, !sequential)
		if err != nil {
			return err
		}
		// Print in the order scenarios were given, not map order.
		for _, s := range scenarios {
			fmt.Print(FormatReport(results[s.Name]))
		}
		return nil
	},
}

// scenariosCmd lists the built-in presets
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenario presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range PresetScenarios() {
			pattern := sim.AnalyzeArrivalPattern(s)
			fmt.Printf("%-32s %2d-%2dh  %4.0f expected customers  %d desks max\n",
				s.Name, s.OperatingHours.Start, s.OperatingHours.End,
				pattern.TotalExpectedArrivals, s.MaxDesks())
		}
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveScenario builds the scenario for runCmd from --scenario or --preset.
func resolveScenario() (*sim.ScenarioConfig, error) {
	switch {
	case scenarioFile != "" && presetName != "":
		return nil, fmt.Errorf("--scenario and --preset are mutually exclusive")
	case scenarioFile != "":
		return LoadScenario(scenarioFile)
	case presetName != "":
		scenario := PresetByName(presetName)
		if scenario == nil {
			return nil, fmt.Errorf("unknown preset %q; run 'service-desk-sim scenarios' to list them", presetName)
		}
		return scenario, nil
	default:
		return nil, fmt.Errorf("either --scenario or --preset is required")
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Int64Var(&masterSeed, "seed", 42, "Master seed for parallel replication seeding")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Worker pool size for parallel mode (0 = number of CPUs)")
	rootCmd.PersistentFlags().BoolVar(&sequential, "sequential", false, "Run replications sequentially with seeds 0..N-1")
	rootCmd.PersistentFlags().IntVar(&replications, "replications", 0, "Override the scenario's replication count (0 = keep)")

	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "Path to a YAML scenario file")
	runCmd.Flags().StringVar(&presetName, "preset", "", "Name of a built-in scenario preset")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(scenariosCmd)
}
