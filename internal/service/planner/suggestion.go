package planner

import (
	"github.com/mealping/mealping-coaching-core/internal/domain"
)

// Amount buckets for suggestion content. Content generation is a fixed
// lookup; anything richer belongs to the presentation layer.
const (
	bucketBite  = 15.0
	bucketSnack = 30.0
	bucketMeal  = 60.0
)

var quickSuggestions = map[string]string{
	"bite":  "Squeeze in a quick bite, something you can grab in two minutes.",
	"snack": "Busy stretch ahead. A no-prep snack keeps you on track.",
	"meal":  "Tight schedule today. A ready-made meal covers what's left.",
	"feast": "You're well behind with a packed day. Grab the biggest low-effort option you have.",
}

var relaxedSuggestions = map[string]string{
	"bite":  "Almost there. A small bite closes out today's target.",
	"snack": "A light snack would keep your day on pace.",
	"meal":  "You have time for a proper meal. That covers most of what's left.",
	"feast": "Plenty left today. A full meal now and a snack later gets you there.",
}

func suggestionText(remaining float64, assessment domain.ScheduleAssessment) string {
	bucket := bucketFor(remaining)

	if assessment.QuickMealNeeded() {
		return quickSuggestions[bucket]
	}
	return relaxedSuggestions[bucket]
}

func bucketFor(remaining float64) string {
	switch {
	case remaining <= bucketBite:
		return "bite"
	case remaining <= bucketSnack:
		return "snack"
	case remaining <= bucketMeal:
		return "meal"
	default:
		return "feast"
	}
}
