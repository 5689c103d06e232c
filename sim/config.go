package sim

import "fmt"

// OperatingHours is the daily service window as whole hours of day.
// Start is inclusive, End is exclusive: (9, 17) means 9am through 5pm.
type OperatingHours struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Minutes returns the length of the operating window in minutes.
func (h OperatingHours) Minutes() float64 {
	return float64(h.End-h.Start) * 60.0
}

// ScenarioConfig describes one simulation scenario. It is read-only for the
// duration of a run; construct via literal and check with Validate before use.
//
// Exactly one of NumDesks or DeskSchedule must be set. ArrivalRates maps
// hour-of-day (0-23) to mean customers per hour; hours inside the operating
// window with no entry contribute zero arrivals.
type ScenarioConfig struct {
	Name            string          `yaml:"name"`
	ArrivalRates    map[int]float64 `yaml:"arrival_rates"`
	NumDesks        int             `yaml:"num_desks,omitempty"`
	DeskSchedule    map[int]int     `yaml:"desk_schedule,omitempty"`
	MeanServiceTime float64         `yaml:"mean_service_time"`
	OperatingHours  OperatingHours  `yaml:"operating_hours"`
	NumReplications int             `yaml:"num_replications"`
}

// Validate checks every scenario invariant and returns a field-specific error
// for the first violation found. A scenario is never partially valid: callers
// must reject a config whose Validate returns non-nil.
func (s *ScenarioConfig) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name must not be empty")
	}
	start, end := s.OperatingHours.Start, s.OperatingHours.End
	if start < 0 || end > 24 || start >= end {
		return fmt.Errorf("operating_hours (%d, %d) invalid: need 0 <= start < end <= 24", start, end)
	}
	if len(s.ArrivalRates) == 0 {
		return fmt.Errorf("arrival_rates must not be empty")
	}
	for hour, rate := range s.ArrivalRates {
		if hour < 0 || hour > 23 {
			return fmt.Errorf("arrival_rates hour %d out of range: must be 0-23", hour)
		}
		if rate < 0 {
			return fmt.Errorf("arrival_rates[%d] must be >= 0, got %f", hour, rate)
		}
	}
	if s.NumDesks != 0 && s.DeskSchedule != nil {
		return fmt.Errorf("num_desks and desk_schedule are mutually exclusive; set exactly one")
	}
	if s.DeskSchedule == nil {
		if s.NumDesks < 1 {
			return fmt.Errorf("num_desks must be >= 1, got %d", s.NumDesks)
		}
	} else {
		for hour, desks := range s.DeskSchedule {
			if hour < 0 || hour > 23 {
				return fmt.Errorf("desk_schedule hour %d out of range: must be 0-23", hour)
			}
			if desks < 1 {
				return fmt.Errorf("desk_schedule[%d] must be >= 1, got %d", hour, desks)
			}
		}
	}
	if s.MeanServiceTime <= 0 {
		return fmt.Errorf("mean_service_time must be positive, got %f", s.MeanServiceTime)
	}
	if s.NumReplications < 1 {
		return fmt.Errorf("num_replications must be >= 1, got %d", s.NumReplications)
	}
	return nil
}

// DeskCountAt returns the number of desks active during the given hour of day.
// With a schedule, hours missing from it default to 1 desk.
func (s *ScenarioConfig) DeskCountAt(hour int) int {
	if s.DeskSchedule != nil {
		if desks, ok := s.DeskSchedule[hour]; ok {
			return desks
		}
		return 1
	}
	return s.NumDesks
}

// MaxDesks returns the size of the desk pool: the largest desk count active
// at any hour. Raising the active count later in the day exposes idle pool
// slots, it never creates desks beyond this.
func (s *ScenarioConfig) MaxDesks() int {
	if s.DeskSchedule != nil {
		max := 1
		for _, desks := range s.DeskSchedule {
			if desks > max {
				max = desks
			}
		}
		return max
	}
	return s.NumDesks
}
