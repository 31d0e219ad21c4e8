package domain

import (
	"time"
)

// PlannedReminder is a future-dated delivery instruction. The core produces
// these fresh on every planning call; the delivery collaborator owns
// persistence, deduplication and firing.
type PlannedReminder struct {
	Identifier      string    `json:"identifier"`
	FireAt          time.Time `json:"fire_at"`
	RemainingAmount float64   `json:"remaining_amount"`
	SuggestionText  string    `json:"suggestion_text"`
}

func NewPlannedReminder(identifier string, fireAt time.Time, remaining float64, suggestion string) PlannedReminder {
	return PlannedReminder{
		Identifier:      identifier,
		FireAt:          fireAt,
		RemainingAmount: remaining,
		SuggestionText:  suggestion,
	}
}
