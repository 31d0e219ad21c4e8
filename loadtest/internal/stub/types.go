package stub

import "time"

type IntervalSeed struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ContributionSeed struct {
	At     string  `json:"at"`
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

type UserSeed struct {
	UserID        string             `json:"user_id"`
	Target        float64            `json:"target"`
	Consumed      float64            `json:"consumed"`
	Contributions []ContributionSeed `json:"contributions,omitempty"`
	BusyIntervals []IntervalSeed     `json:"busy_intervals,omitempty"`
	PatternHours  []int              `json:"pattern_hours,omitempty"`
}

type SeedRequest struct {
	Users []UserSeed `json:"users"`
}

type intervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type busyResponse struct {
	UserID    string             `json:"user_id"`
	Day       string             `json:"day"`
	Intervals []intervalResponse `json:"intervals"`
	Count     int                `json:"count"`
}

type contributionResponse struct {
	At     time.Time `json:"at"`
	Source string    `json:"source"`
	Amount float64   `json:"amount"`
}

type dailyIntakeResponse struct {
	UserID        string                 `json:"user_id"`
	Day           string                 `json:"day"`
	Target        float64                `json:"target"`
	Consumed      float64                `json:"consumed"`
	Contributions []contributionResponse `json:"contributions"`
}

type patternSummaryResponse struct {
	UserID   string `json:"user_id"`
	TopHours []int  `json:"top_hours"`
}

// ReminderTask mirrors the payload the coaching core posts to its delivery
// queue, so load tests can assert on what was scheduled.
type ReminderTask struct {
	Identifier      string    `json:"identifier"`
	UserID          string    `json:"user_id"`
	FireAt          time.Time `json:"fire_at"`
	RemainingAmount float64   `json:"remaining_amount"`
	SuggestionText  string    `json:"suggestion_text"`
}

type tasksResponse struct {
	Tasks []ReminderTask `json:"tasks"`
	Count int            `json:"count"`
}
