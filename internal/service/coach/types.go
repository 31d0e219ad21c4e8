package coach

import (
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

// Response is the full outcome of one coaching run.
type Response struct {
	UserID     string                    `json:"user_id"`
	Day        string                    `json:"day"`
	Now        time.Time                 `json:"now"`
	Assessment domain.ScheduleAssessment `json:"assessment"`

	Target    float64 `json:"target"`
	Consumed  float64 `json:"consumed"`
	Remaining float64 `json:"remaining"`

	CurrentStreak       int              `json:"current_streak"`
	BestStreak          int              `json:"best_streak"`
	CurrentLevel        domain.Level     `json:"current_level"`
	ProgressToNextLevel float64          `json:"progress_to_next_level"`
	LevelUp             *domain.Level    `json:"level_up,omitempty"`
	NewBadges           []domain.BadgeID `json:"new_badges"`

	Achievements []domain.AchievementEvent `json:"achievements"`
	Reminders    []domain.PlannedReminder  `json:"reminders"`

	RemindersEnqueued int    `json:"reminders_enqueued"`
	ReminderSkipped   bool   `json:"reminder_skipped"`
	SkipReason        string `json:"skip_reason,omitempty"`
}
