package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/egarcialopez2014/service-desk-simulator/sim"
)

// defaultReplications is applied when a scenario file omits num_replications.
const defaultReplications = 1000

// LoadScenario reads and validates a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
//
// Example file:
//
//	name: Weekday
//	arrival_rates:
//	  9: 10
//	  10: 15
//	num_desks: 3
//	mean_service_time: 8.5
//	operating_hours: {start: 9, end: 11}
//	num_replications: 1000
func LoadScenario(path string) (*sim.ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var scenario sim.ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if scenario.NumReplications == 0 {
		scenario.NumReplications = defaultReplications
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return &scenario, nil
}
