package achievement

import (
	"log/slog"
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

const (
	earlyBirdHour = 9
	nightOwlHour  = 21

	// earlyBirdMinAmount filters out token morning entries; only a
	// meaningful contribution before the early hour qualifies.
	earlyBirdMinAmount = 5.0

	precisionTolerance = 5.0
	overachieverFactor = 1.5
	varietyMinSources  = 5
)

// Detector evaluates the achievement rule table against one day's data.
// Each (day, kind) pair is emitted at most once; emission state lives on the
// StreakState and is reset by its explicit day marker.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns every newly qualifying achievement for the day. It does not
// mark them emitted; callers commit the emission with MarkEmitted once the
// events have been handed off.
func (d *Detector) Detect(date time.Time, status domain.DailyStatus, contributions []domain.ContributionEvent, state *domain.StreakState) []domain.AchievementEvent {
	day := domain.DayKey(date)
	state.ResetDailyKeysIfNewDay(day)

	events := make([]domain.AchievementEvent, 0)
	emit := func(kind domain.AchievementKind) {
		if state.TodaysAchievementKeys[kind.String()] {
			return
		}
		events = append(events, domain.NewAchievementEvent(day, kind, date))
	}

	if len(contributions) > 0 {
		// Lifetime first: flagged on the state, not reset by the daily clear.
		if !state.HasEverLogged {
			emit(domain.AchievementFirstEver)
		}
		emit(domain.AchievementFirstToday)
	}

	if kind, ok := highestNewMilestone(status, state); ok {
		emit(kind)
	}

	for _, c := range contributions {
		if c.At.Hour() < earlyBirdHour && c.Amount >= earlyBirdMinAmount {
			emit(domain.AchievementEarlyBird)
			break
		}
	}
	if first, ok := earliestContribution(contributions); ok && first.At.Hour() >= nightOwlHour {
		emit(domain.AchievementNightOwl)
	}

	if isWeekend(date) && status.TargetHit() {
		emit(domain.AchievementWeekendWarrior)
	}

	if status.TargetHit() && status.Consumed <= status.Target+precisionTolerance {
		emit(domain.AchievementPrecision)
	}

	if status.Consumed >= status.Target*overachieverFactor {
		emit(domain.AchievementOverachiever)
	}

	if distinctSources(contributions) >= varietyMinSources {
		emit(domain.AchievementVariety)
	}

	if state.CurrentStreak == 1 && state.BestStreak > 1 {
		emit(domain.AchievementComeback)
	}

	if len(events) > 0 {
		slog.Debug("achievements detected",
			slog.String("user_id", state.UserID),
			slog.String("day", day),
			slog.Int("count", len(events)),
		)
	}

	return events
}

// MarkEmitted records the events in the state's daily key set so subsequent
// Detect calls on the same day skip them. The lifetime flag is set here as
// well: a first-ever event is only "consumed" once delivered.
func (d *Detector) MarkEmitted(state *domain.StreakState, events []domain.AchievementEvent) {
	for _, event := range events {
		state.TodaysAchievementKeys[event.Kind.String()] = true
		if event.Kind == domain.AchievementFirstEver {
			state.HasEverLogged = true
		}
	}
}

// highestNewMilestone returns the highest percentage milestone newly crossed
// this pass. Lower milestones skipped by a jump are never back-filled.
func highestNewMilestone(status domain.DailyStatus, state *domain.StreakState) (domain.AchievementKind, bool) {
	milestones := []struct {
		percent float64
		kind    domain.AchievementKind
	}{
		{100, domain.AchievementMilestone100},
		{75, domain.AchievementMilestone75},
		{50, domain.AchievementMilestone50},
		{25, domain.AchievementMilestone25},
	}

	progress := status.ProgressPercent()
	for _, m := range milestones {
		if progress < m.percent {
			continue
		}
		if state.TodaysAchievementKeys[m.kind.String()] {
			// The highest crossed milestone was already emitted; anything
			// below it is stale, not new.
			return "", false
		}
		return m.kind, true
	}

	return "", false
}

// earliestContribution finds the day's first contribution by timestamp. The
// upstream payload carries no ordering guarantee.
func earliestContribution(contributions []domain.ContributionEvent) (domain.ContributionEvent, bool) {
	if len(contributions) == 0 {
		return domain.ContributionEvent{}, false
	}

	first := contributions[0]
	for _, c := range contributions[1:] {
		if c.At.Before(first.At) {
			first = c
		}
	}
	return first, true
}

func isWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

func distinctSources(contributions []domain.ContributionEvent) int {
	sources := make(map[string]bool, len(contributions))
	for _, c := range contributions {
		if c.Source != "" {
			sources[c.Source] = true
		}
	}
	return len(sources)
}
