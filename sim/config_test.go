package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScenario() *ScenarioConfig {
	return &ScenarioConfig{
		Name:            "test",
		ArrivalRates:    map[int]float64{9: 10, 10: 15},
		NumDesks:        3,
		MeanServiceTime: 8.5,
		OperatingHours:  OperatingHours{Start: 9, End: 11},
		NumReplications: 10,
	}
}

func TestScenarioConfig_Validate_Valid(t *testing.T) {
	require.NoError(t, validScenario().Validate())
}

func TestScenarioConfig_Validate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ScenarioConfig)
	}{
		{"empty name", func(s *ScenarioConfig) { s.Name = "" }},
		{"start after end", func(s *ScenarioConfig) { s.OperatingHours = OperatingHours{Start: 11, End: 9} }},
		{"start equals end", func(s *ScenarioConfig) { s.OperatingHours = OperatingHours{Start: 9, End: 9} }},
		{"negative start", func(s *ScenarioConfig) { s.OperatingHours = OperatingHours{Start: -1, End: 9} }},
		{"end past midnight", func(s *ScenarioConfig) { s.OperatingHours = OperatingHours{Start: 9, End: 25} }},
		{"no arrival rates", func(s *ScenarioConfig) { s.ArrivalRates = nil }},
		{"rate hour out of range", func(s *ScenarioConfig) { s.ArrivalRates[24] = 5 }},
		{"negative rate", func(s *ScenarioConfig) { s.ArrivalRates[9] = -1 }},
		{"both desk fields set", func(s *ScenarioConfig) { s.DeskSchedule = map[int]int{9: 2} }},
		{"no desks", func(s *ScenarioConfig) { s.NumDesks = 0 }},
		{"schedule hour out of range", func(s *ScenarioConfig) {
			s.NumDesks = 0
			s.DeskSchedule = map[int]int{-1: 2}
		}},
		{"schedule count below one", func(s *ScenarioConfig) {
			s.NumDesks = 0
			s.DeskSchedule = map[int]int{9: 0}
		}},
		{"zero service time", func(s *ScenarioConfig) { s.MeanServiceTime = 0 }},
		{"negative service time", func(s *ScenarioConfig) { s.MeanServiceTime = -2 }},
		{"zero replications", func(s *ScenarioConfig) { s.NumReplications = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validScenario()
			tc.mutate(s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestScenarioConfig_DeskCountAt_ConstantDesks(t *testing.T) {
	s := validScenario()
	assert.Equal(t, 3, s.DeskCountAt(9))
	assert.Equal(t, 3, s.DeskCountAt(15))
}

func TestScenarioConfig_DeskCountAt_Schedule(t *testing.T) {
	s := validScenario()
	s.NumDesks = 0
	s.DeskSchedule = map[int]int{9: 2, 10: 3}
	require.NoError(t, s.Validate())

	assert.Equal(t, 2, s.DeskCountAt(9))
	assert.Equal(t, 3, s.DeskCountAt(10))
	// Hours missing from the schedule default to a single desk.
	assert.Equal(t, 1, s.DeskCountAt(11))
}

func TestScenarioConfig_MaxDesks(t *testing.T) {
	s := validScenario()
	assert.Equal(t, 3, s.MaxDesks())

	s.NumDesks = 0
	s.DeskSchedule = map[int]int{9: 2, 10: 5, 11: 3}
	assert.Equal(t, 5, s.MaxDesks())
}

func TestOperatingHours_Minutes(t *testing.T) {
	assert.Equal(t, 120.0, OperatingHours{Start: 9, End: 11}.Minutes())
	assert.Equal(t, 720.0, OperatingHours{Start: 10, End: 22}.Minutes())
}
