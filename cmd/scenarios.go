package cmd

import "github.com/egarcialopez2014/service-desk-simulator/sim"

// Built-in scenario presets for common staffing patterns.
// Each returns a valid ScenarioConfig ready for use with MonteCarloRunner.

// ScenarioWeekdayLarge is a typical weekday for a large store: a lunch bump,
// a bigger evening peak, constant staffing at 3 desks.
func ScenarioWeekdayLarge() *sim.ScenarioConfig {
	return &sim.ScenarioConfig{
		Name: "Weekday Basic - 3 Desks",
		ArrivalRates: map[int]float64{
			10: 6, 11: 8, 12: 10, 13: 13, 14: 15, 15: 12,
			16: 12, 17: 19, 18: 20, 19: 21, 20: 15, 21: 5,
		},
		NumDesks:        3,
		MeanServiceTime: 3.0,
		OperatingHours:  sim.OperatingHours{Start: 10, End: 22},
		NumReplications: 1000,
	}
}

// ScenarioWeekdaySmall is the same shape scaled down for a small store with
// 2 desks.
func ScenarioWeekdaySmall() *sim.ScenarioConfig {
	return &sim.ScenarioConfig{
		Name: "Weekday Basic - 2 Desks",
		ArrivalRates: map[int]float64{
			10: 6, 11: 9, 12: 10, 13: 9, 14: 7, 15: 5,
			16: 8, 17: 15, 18: 16, 19: 16, 20: 11, 21: 4,
		},
		NumDesks:        2,
		MeanServiceTime: 3.0,
		OperatingHours:  sim.OperatingHours{Start: 10, End: 22},
		NumReplications: 1000,
	}
}

// ScenarioPeakDayVariable is a peak-season day with heavy evening demand and
// staffing that ramps from 4 to 6 desks across the day.
func ScenarioPeakDayVariable() *sim.ScenarioConfig {
	return &sim.ScenarioConfig{
		Name: "Peak Day - Variable Staffing",
		ArrivalRates: map[int]float64{
			10: 28, 11: 40, 12: 52, 13: 63, 14: 74, 15: 61,
			16: 62, 17: 93, 18: 100, 19: 104, 20: 75, 21: 26,
		},
		DeskSchedule: map[int]int{
			10: 4, 11: 4, 12: 4, 13: 4, 14: 5, 15: 5,
			16: 5, 17: 6, 18: 6, 19: 6, 20: 6, 21: 4,
		},
		MeanServiceTime: 3.0,
		OperatingHours:  sim.OperatingHours{Start: 10, End: 22},
		NumReplications: 1000,
	}
}

// PresetScenarios returns all built-in presets in display order.
func PresetScenarios() []*sim.ScenarioConfig {
	return []*sim.ScenarioConfig{
		ScenarioWeekdayLarge(),
		ScenarioWeekdaySmall(),
		ScenarioPeakDayVariable(),
	}
}

// PresetByName returns the preset with the given name, or nil.
func PresetByName(name string) *sim.ScenarioConfig {
	for _, s := range PresetScenarios() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
