package planner

import (
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

// windowPhase is the closed classification of how much of the eating window
// remains. Every branch of the planning policy is keyed on one of these.
type windowPhase int

const (
	phaseClosed windowPhase = iota
	phaseClosing
	phaseShort
	phaseMid
	phaseLong
	phaseOpenEnded
)

// Input is the snapshot a planning call works from.
type Input struct {
	Now          time.Time
	WindowEnd    time.Time
	Remaining    float64
	Assessment   domain.ScheduleAssessment
	PatternHours []int
}

// Plan is the ordered list of reminders produced by one planning call,
// plus bookkeeping about which policy branch fired.
type Plan struct {
	Reminders  []domain.PlannedReminder `json:"reminders"`
	Urgent     bool                     `json:"urgent"`
	Skipped    bool                     `json:"skipped"`
	SkipReason string                   `json:"skip_reason,omitempty"`
}
