package planner

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

const (
	urgentFreeSlotHorizon = 30 * time.Minute
	urgentFallbackDelay   = 5 * time.Minute
	closingDelay          = 5 * time.Minute
	shortDelay            = 15 * time.Minute
	midFirstDelay         = 2 * time.Hour
	midSecondBeforeEnd    = time.Hour
)

// Service plans whether, when and with what content to nudge the user toward
// the day's remaining target. Pure over its inputs; each call mints fresh
// reminder identifiers and the caller dedups against what it already
// scheduled.
type Service struct {
	minRemaining    float64
	urgentRemaining float64
}

func NewService(minRemaining, urgentRemaining float64) *Service {
	if minRemaining <= 0 {
		minRemaining = 10
	}
	if urgentRemaining <= minRemaining {
		urgentRemaining = minRemaining + 5
	}
	return &Service{
		minRemaining:    minRemaining,
		urgentRemaining: urgentRemaining,
	}
}

func (s *Service) PlanReminders(input Input) *Plan {
	if input.Remaining <= s.minRemaining {
		return skipped("remaining amount below reminder threshold")
	}

	hoursLeft := input.WindowEnd.Sub(input.Now).Hours()
	if hoursLeft <= 0 {
		return skipped("outside eating window")
	}

	if hoursLeft < 1.5 && input.Remaining > s.urgentRemaining {
		return s.planUrgent(input)
	}

	switch classifyWindow(hoursLeft) {
	case phaseClosing:
		return s.single(input, input.Now.Add(closingDelay), false)
	case phaseShort:
		return s.single(input, input.Now.Add(shortDelay), false)
	case phaseMid:
		midpoint := input.Now.Add(input.WindowEnd.Sub(input.Now) / 2)
		return s.single(input, midpoint, false)
	case phaseLong:
		return s.planPair(input)
	default:
		// Six or more hours left; too early to nag.
		return skipped("eating window still wide open")
	}
}

// planUrgent fires a single near-term reminder: the next free slot when it is
// close enough, otherwise a fixed short delay.
func (s *Service) planUrgent(input Input) *Plan {
	fireAt := input.Now.Add(urgentFallbackDelay)
	if slot := input.Assessment.NextFreeSlot; slot != nil && !slot.After(input.Now.Add(urgentFreeSlotHorizon)) {
		fireAt = *slot
	}

	plan := s.single(input, fireAt, true)
	slog.Debug("urgent reminder planned",
		slog.Time("fire_at", fireAt),
		slog.Float64("remaining", input.Remaining),
	)
	return plan
}

// planPair schedules an early and a late nudge. The early one snaps to a
// historical pattern hour when one lands inside the remaining window.
func (s *Service) planPair(input Input) *Plan {
	first := input.Now.Add(midFirstDelay)
	if anchor, ok := patternAnchor(input); ok {
		first = anchor
	}
	second := input.WindowEnd.Add(-midSecondBeforeEnd)

	reminders := []domain.PlannedReminder{
		s.newReminder(input, first),
	}
	if second.After(first) {
		reminders = append(reminders, s.newReminder(input, second))
	}

	return &Plan{Reminders: reminders}
}

func (s *Service) single(input Input, fireAt time.Time, urgent bool) *Plan {
	return &Plan{
		Reminders: []domain.PlannedReminder{s.newReminder(input, fireAt)},
		Urgent:    urgent,
	}
}

func (s *Service) newReminder(input Input, fireAt time.Time) domain.PlannedReminder {
	text := suggestionText(input.Remaining, input.Assessment)
	return domain.NewPlannedReminder(uuid.NewString(), fireAt, input.Remaining, text)
}

func classifyWindow(hoursLeft float64) windowPhase {
	switch {
	case hoursLeft <= 0:
		return phaseClosed
	case hoursLeft < 0.5:
		return phaseClosing
	case hoursLeft < 1.5:
		return phaseShort
	case hoursLeft < 3:
		return phaseMid
	case hoursLeft < 6:
		return phaseLong
	default:
		return phaseOpenEnded
	}
}

// patternAnchor finds the earliest caller-supplied pattern hour that still
// lies strictly inside (now, windowEnd).
func patternAnchor(input Input) (time.Time, bool) {
	for _, hour := range input.PatternHours {
		if hour < 0 || hour > 23 {
			continue
		}
		candidate := time.Date(
			input.Now.Year(), input.Now.Month(), input.Now.Day(),
			hour, 0, 0, 0, input.Now.Location(),
		)
		if candidate.After(input.Now) && candidate.Before(input.WindowEnd) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

func skipped(reason string) *Plan {
	return &Plan{
		Reminders:  []domain.PlannedReminder{},
		Skipped:    true,
		SkipReason: reason,
	}
}
