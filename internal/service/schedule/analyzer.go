package schedule

import (
	"log/slog"
	"math"
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

const (
	// scanStep is the fixed candidate granularity of the free-slot search,
	// independent of the requested slot duration.
	scanStep = 15 * time.Minute

	// backToBackGap is the threshold under which two adjacent intervals
	// count as back-to-back.
	backToBackGap = 15 * time.Minute

	// stressWindow is the half-width of the window around now that is
	// inspected for the meeting count.
	stressWindow = time.Hour

	defaultAvailableMinutes = 60
)

// Analyzer turns a snapshot of busy intervals into a ScheduleAssessment.
// Pure over its inputs; the caller supplies now explicitly.
type Analyzer struct {
	slotDuration time.Duration
	dayEndHour   int
}

func NewAnalyzer(slotDuration time.Duration, dayEndHour int) *Analyzer {
	if slotDuration <= 0 {
		slotDuration = scanStep
	}
	if dayEndHour <= 0 || dayEndHour > 24 {
		dayEndHour = 22
	}
	return &Analyzer{
		slotDuration: slotDuration,
		dayEndHour:   dayEndHour,
	}
}

func (a *Analyzer) Analyze(now time.Time, busy []domain.BusyInterval) domain.ScheduleAssessment {
	assessment := domain.ScheduleAssessment{
		NextFreeSlot:     a.findFreeSlot(now, busy, a.slotDuration),
		StressLevel:      a.classifyStress(now, busy),
		AvailableMinutes: a.availableMinutes(now, busy),
		TimeOfDay:        domain.TimeOfDayFor(now),
	}

	slog.Debug("schedule analyzed",
		slog.Time("now", now),
		slog.Int("busy_intervals", len(busy)),
		slog.String("stress_level", assessment.StressLevel.String()),
		slog.Int("available_minutes", assessment.AvailableMinutes),
	)

	return assessment
}

// AnalyzeWithDuration runs the analysis for a caller-requested slot duration
// instead of the configured default.
func (a *Analyzer) AnalyzeWithDuration(now time.Time, busy []domain.BusyInterval, slotDuration time.Duration) domain.ScheduleAssessment {
	if slotDuration <= 0 {
		slotDuration = a.slotDuration
	}
	assessment := a.Analyze(now, busy)
	assessment.NextFreeSlot = a.findFreeSlot(now, busy, slotDuration)
	return assessment
}

// findFreeSlot scans forward from now in fixed steps until the day-end
// cutoff and returns the first candidate start whose slot overlaps nothing.
func (a *Analyzer) findFreeSlot(now time.Time, busy []domain.BusyInterval, slotDuration time.Duration) *time.Time {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), a.dayEndHour, 0, 0, 0, now.Location())

	for candidate := now; candidate.Before(cutoff); candidate = candidate.Add(scanStep) {
		slot := domain.NewBusyInterval(candidate, candidate.Add(slotDuration))
		if !overlapsAny(slot, busy) {
			start := candidate
			return &start
		}
	}

	return nil
}

func (a *Analyzer) classifyStress(now time.Time, busy []domain.BusyInterval) domain.StressLevel {
	window := domain.NewBusyInterval(now.Add(-stressWindow), now.Add(stressWindow))

	meetingCount := 0
	for _, interval := range busy {
		if window.Overlaps(interval) {
			meetingCount++
		}
	}

	// Back-to-back pairs are counted over the whole known schedule, not
	// just the window around now.
	backToBack := domain.CountBackToBack(busy, backToBackGap)

	switch {
	case meetingCount >= 3 || backToBack >= 2:
		return domain.StressHigh
	case meetingCount >= 1 || backToBack >= 1:
		return domain.StressMedium
	default:
		return domain.StressLow
	}
}

func (a *Analyzer) availableMinutes(now time.Time, busy []domain.BusyInterval) int {
	var next *time.Time
	for _, interval := range busy {
		if !interval.Start.After(now) {
			continue
		}
		if next == nil || interval.Start.Before(*next) {
			start := interval.Start
			next = &start
		}
	}

	if next == nil {
		return defaultAvailableMinutes
	}

	return int(math.Ceil(next.Sub(now).Minutes()))
}

func overlapsAny(slot domain.BusyInterval, busy []domain.BusyInterval) bool {
	for _, interval := range busy {
		if slot.Overlaps(interval) {
			return true
		}
	}
	return false
}
