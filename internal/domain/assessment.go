package domain

import (
	"time"
)

// StressLevel classifies how busy the user's near-term schedule is.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

func (s StressLevel) String() string {
	return string(s)
}

// TimeOfDay buckets the hour component of an instant.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayLunch     TimeOfDay = "lunch"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

func (t TimeOfDay) String() string {
	return string(t)
}

// TimeOfDayFor buckets the hour of t:
// [6,11) morning, [11,14) lunch, [14,18) afternoon, [18,22) evening, else night.
func TimeOfDayFor(t time.Time) TimeOfDay {
	switch hour := t.Hour(); {
	case hour >= 6 && hour < 11:
		return TimeOfDayMorning
	case hour >= 11 && hour < 14:
		return TimeOfDayLunch
	case hour >= 14 && hour < 18:
		return TimeOfDayAfternoon
	case hour >= 18 && hour < 22:
		return TimeOfDayEvening
	default:
		return TimeOfDayNight
	}
}

// ScheduleAssessment is the analyzer's structured judgment of the schedule
// around a single instant. Immutable per invocation.
type ScheduleAssessment struct {
	NextFreeSlot     *time.Time  `json:"next_free_slot,omitempty"`
	StressLevel      StressLevel `json:"stress_level"`
	AvailableMinutes int         `json:"available_minutes"`
	TimeOfDay        TimeOfDay   `json:"time_of_day"`
}

// QuickMealNeeded reports whether the schedule only leaves room for something
// fast: high stress or less than 20 free minutes.
func (a ScheduleAssessment) QuickMealNeeded() bool {
	return a.StressLevel == StressHigh || a.AvailableMinutes < 20
}

// SuggestedPrepMinutes maps the assessment to a preparation-time budget.
func (a ScheduleAssessment) SuggestedPrepMinutes() int {
	switch a.StressLevel {
	case StressHigh:
		return 2
	case StressMedium:
		return minInt(10, a.AvailableMinutes/2)
	default:
		budget := a.AvailableMinutes - 10
		if budget < 0 {
			budget = 0
		}
		return minInt(30, budget)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
