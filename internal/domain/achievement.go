package domain

import (
	"time"
)

// AchievementKind identifies one detection rule. The (day, kind) pair is the
// at-most-once emission key.
type AchievementKind string

const (
	AchievementFirstEver      AchievementKind = "first_ever"
	AchievementFirstToday     AchievementKind = "first_today"
	AchievementMilestone25    AchievementKind = "milestone_25"
	AchievementMilestone50    AchievementKind = "milestone_50"
	AchievementMilestone75    AchievementKind = "milestone_75"
	AchievementMilestone100   AchievementKind = "milestone_100"
	AchievementEarlyBird      AchievementKind = "early_bird"
	AchievementNightOwl       AchievementKind = "night_owl"
	AchievementWeekendWarrior AchievementKind = "weekend_warrior"
	AchievementPrecision      AchievementKind = "precision_finish"
	AchievementOverachiever   AchievementKind = "overachiever"
	AchievementVariety        AchievementKind = "variety"
	AchievementComeback       AchievementKind = "comeback"
)

func (k AchievementKind) String() string {
	return string(k)
}

// AchievementEvent is a transient milestone signal identified by (Day, Kind).
type AchievementEvent struct {
	Day        string          `json:"day"`
	Kind       AchievementKind `json:"kind"`
	DetectedAt time.Time       `json:"detected_at"`
}

func NewAchievementEvent(day string, kind AchievementKind, detectedAt time.Time) AchievementEvent {
	return AchievementEvent{
		Day:        day,
		Kind:       kind,
		DetectedAt: detectedAt,
	}
}
