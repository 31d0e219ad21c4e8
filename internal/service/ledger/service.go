package ledger

import (
	"log/slog"
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

// Service applies a day's consumption total to the user's StreakState:
// once-per-day streak crediting, badge awards and level transitions.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Result is the outcome of one EvaluateDay call.
type Result struct {
	State         *domain.StreakState
	Status        domain.DailyStatus
	NewBadges     []domain.BadgeID
	LevelUp       *domain.Level
	StreakChanged bool
}

// EvaluateDay evaluates date's provisional outcome against the streak state
// and returns an updated copy. The input state is never mutated; rejected
// calls leave no trace.
//
// Crediting is guarded by LastCreditedDay so repeated calls on the same day
// never double-increment. A below-target evaluation resets the streak unless
// the day was already credited. A gap of more than one day since the last
// credited day breaks the streak before the new day is considered.
func (s *Service) EvaluateDay(date time.Time, consumed, target float64, state *domain.StreakState) (*Result, error) {
	if err := domain.ValidateAmounts(target, consumed); err != nil {
		return nil, err
	}

	day := domain.DayKey(date)
	if state.LastEvaluatedDay != "" && day < state.LastEvaluatedDay {
		return nil, domain.ErrStaleEvaluationDay
	}

	status, err := domain.NewDailyStatus(date, target, consumed)
	if err != nil {
		return nil, err
	}

	updated := state.Clone()
	updated.ResetDailyKeysIfNewDay(day)

	// Level-up comparison is anchored on the settled chain, not on a
	// provisional same-day reset, so one transition emits at most once.
	levelBefore := domain.LevelForStreak(updated.CreditedStreak)
	streakBefore := updated.CurrentStreak

	// A missed day between the last credited day and this one breaks the
	// chain regardless of today's outcome.
	if updated.LastCreditedDay != "" && updated.LastCreditedDay != day && !daysAdjacent(updated.LastCreditedDay, day) {
		updated.CreditedStreak = 0
	}

	switch {
	case updated.LastCreditedDay == day:
		// Already credited today; repeated calls are no-ops.
		updated.CurrentStreak = updated.CreditedStreak
	case status.TargetHit():
		updated.CreditedStreak++
		updated.LastCreditedDay = day
		updated.CurrentStreak = updated.CreditedStreak
	default:
		// Provisional miss: report zero but keep the chain bookkeeping so
		// a later same-day target hit continues it.
		updated.CurrentStreak = 0
	}

	if updated.CurrentStreak > updated.BestStreak {
		updated.BestStreak = updated.CurrentStreak
	}
	updated.CurrentLevel = domain.LevelForStreak(updated.CurrentStreak)

	newBadges := awardBadges(updated)

	var levelUp *domain.Level
	if domain.LevelRank(updated.CurrentLevel) > domain.LevelRank(levelBefore) {
		level := updated.CurrentLevel
		levelUp = &level
	}

	if updated.CurrentStreak != streakBefore {
		slog.Debug("streak transition",
			slog.String("user_id", updated.UserID),
			slog.String("day", day),
			slog.Int("streak_before", streakBefore),
			slog.Int("streak_after", updated.CurrentStreak),
		)
	}

	return &Result{
		State:         updated,
		Status:        status,
		NewBadges:     newBadges,
		LevelUp:       levelUp,
		StreakChanged: updated.CurrentStreak != streakBefore,
	}, nil
}

// awardBadges grants every ladder badge the streak has newly reached.
// Awards are monotonic; a later streak reset never revokes them.
func awardBadges(state *domain.StreakState) []domain.BadgeID {
	newBadges := make([]domain.BadgeID, 0)
	for _, badge := range domain.BadgesForStreak(state.CurrentStreak) {
		if state.AwardedBadges[badge] {
			continue
		}
		state.AwardedBadges[badge] = true
		newBadges = append(newBadges, badge)
	}
	return newBadges
}

func daysAdjacent(earlierDay, laterDay string) bool {
	earlier, err := domain.ParseDayKey(earlierDay)
	if err != nil {
		return false
	}
	later, err := domain.ParseDayKey(laterDay)
	if err != nil {
		return false
	}
	return later.Sub(earlier) == 24*time.Hour
}
