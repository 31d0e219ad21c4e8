package domain

// Level is a named tier derived purely from the current streak length.
type Level string

const (
	LevelStarter    Level = "starter"
	LevelSteady     Level = "steady"
	LevelConsistent Level = "consistent"
	LevelDedicated  Level = "dedicated"
	LevelChampion   Level = "champion"
	LevelLegend     Level = "legend"
)

func (l Level) String() string {
	return string(l)
}

type levelThreshold struct {
	MinStreak int
	Level     Level
}

// Ordered ascending; LevelForStreak picks the highest threshold <= streak.
var levelLadder = []levelThreshold{
	{0, LevelStarter},
	{3, LevelSteady},
	{7, LevelConsistent},
	{14, LevelDedicated},
	{30, LevelChampion},
	{60, LevelLegend},
}

// LevelForStreak derives the level from the streak length alone.
func LevelForStreak(streak int) Level {
	level := levelLadder[0].Level
	for _, t := range levelLadder {
		if streak >= t.MinStreak {
			level = t.Level
		}
	}
	return level
}

// LevelRank orders levels for level-up comparison. Unknown levels rank -1.
func LevelRank(level Level) int {
	for i, t := range levelLadder {
		if t.Level == level {
			return i
		}
	}
	return -1
}

// ProgressToNextLevel reports how far the streak sits between its current
// tier and the next, clamped to [0,1]. The top tier reports 1.
func ProgressToNextLevel(streak int) float64 {
	for i := len(levelLadder) - 1; i >= 0; i-- {
		if streak < levelLadder[i].MinStreak {
			continue
		}
		if i == len(levelLadder)-1 {
			return 1
		}
		span := levelLadder[i+1].MinStreak - levelLadder[i].MinStreak
		progress := float64(streak-levelLadder[i].MinStreak) / float64(span)
		if progress > 1 {
			progress = 1
		}
		return progress
	}
	return 0
}

// BadgeID identifies a one-time streak award.
type BadgeID string

const (
	BadgeThreeDay   BadgeID = "streak_3"
	BadgeFirstWeek  BadgeID = "streak_7"
	BadgeFortnight  BadgeID = "streak_14"
	BadgeFirstMonth BadgeID = "streak_30"
	BadgeTwoMonth   BadgeID = "streak_60"
	BadgeCentury    BadgeID = "streak_100"
)

type badgeThreshold struct {
	MinStreak int
	Badge     BadgeID
}

var badgeLadder = []badgeThreshold{
	{3, BadgeThreeDay},
	{7, BadgeFirstWeek},
	{14, BadgeFortnight},
	{30, BadgeFirstMonth},
	{60, BadgeTwoMonth},
	{100, BadgeCentury},
}

// BadgesForStreak returns every badge whose threshold the streak has reached.
func BadgesForStreak(streak int) []BadgeID {
	badges := make([]BadgeID, 0, len(badgeLadder))
	for _, t := range badgeLadder {
		if streak >= t.MinStreak {
			badges = append(badges, t.Badge)
		}
	}
	return badges
}

// StreakState is the per-user gamification entity. Mutations must be
// serialized per user; see the coach service.
type StreakState struct {
	UserID           string           `json:"user_id"`
	CurrentStreak    int              `json:"current_streak"`
	BestStreak       int              `json:"best_streak"`
	CurrentLevel     Level            `json:"current_level"`
	AwardedBadges    map[BadgeID]bool `json:"awarded_badges"`
	HasEverLogged    bool             `json:"has_ever_logged"`
	LastEvaluatedDay string           `json:"last_evaluated_day"`
	LastCreditedDay  string           `json:"last_credited_day"`
	// CreditedStreak is the chain length as of LastCreditedDay. It survives
	// provisional below-target evaluations of the following day, so a late
	// target hit continues the chain instead of restarting it.
	CreditedStreak int `json:"credited_streak"`
	// TodaysAchievementKeys holds the achievement kinds already emitted for
	// LastEvaluatedDay. Cleared on day rollover.
	TodaysAchievementKeys map[string]bool `json:"todays_achievement_keys"`
}

// NewStreakState creates the entity for a user's first evaluation.
func NewStreakState(userID string) *StreakState {
	return &StreakState{
		UserID:                userID,
		CurrentStreak:         0,
		BestStreak:            0,
		CurrentLevel:          LevelStarter,
		AwardedBadges:         make(map[BadgeID]bool),
		TodaysAchievementKeys: make(map[string]bool),
	}
}

// Clone returns a deep copy so service layers can work on a scratch copy and
// leave the original untouched when validation fails.
func (s *StreakState) Clone() *StreakState {
	clone := *s
	clone.AwardedBadges = make(map[BadgeID]bool, len(s.AwardedBadges))
	for id := range s.AwardedBadges {
		clone.AwardedBadges[id] = true
	}
	clone.TodaysAchievementKeys = make(map[string]bool, len(s.TodaysAchievementKeys))
	for key := range s.TodaysAchievementKeys {
		clone.TodaysAchievementKeys[key] = true
	}
	return &clone
}

// ResetDailyKeysIfNewDay clears the daily achievement set when the stored
// day marker differs from day. The marker is an explicit field, never parsed
// out of a key, so an empty set still rolls over correctly.
func (s *StreakState) ResetDailyKeysIfNewDay(day string) {
	if s.LastEvaluatedDay == day {
		return
	}
	s.TodaysAchievementKeys = make(map[string]bool)
	s.LastEvaluatedDay = day
}

func (s *StreakState) HasBadge(id BadgeID) bool {
	return s.AwardedBadges[id]
}
