package domain

import (
	"context"
	"time"
)

// CoachingRunRecord summarizes one coaching run for offline analysis.
type CoachingRunRecord struct {
	RunID             string
	UserID            string
	Day               string
	VirtualNow        time.Time
	StressLevel       string
	TimeOfDay         string
	AvailableMinutes  int
	RemainingAmount   float64
	CurrentStreak     int
	RemindersPlanned  int
	AchievementsFired int
	BadgesAwarded     int
	LeveledUp         bool
}

// CoachingResultRecorder persists run summaries to an analytics sink.
// Implementations must never fail a coaching run; write errors are logged
// and swallowed.
type CoachingResultRecorder interface {
	RecordRun(ctx context.Context, record CoachingRunRecord) error
	Flush(ctx context.Context) error
	Close() error
}
