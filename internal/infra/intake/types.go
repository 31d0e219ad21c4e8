package intake

import "time"

type ContributionResponse struct {
	At     time.Time `json:"at"`
	Source string    `json:"source"`
	Amount float64   `json:"amount"`
}

type DailyIntakeResponse struct {
	UserID        string                 `json:"user_id"`
	Day           string                 `json:"day"`
	Target        float64                `json:"target"`
	Consumed      float64                `json:"consumed"`
	Contributions []ContributionResponse `json:"contributions"`
}

// PatternSummaryResponse carries the top hours of day on which the user
// historically reached at least 80% of target, ranked best first. The
// intake-history service computes this; at most the top three are used.
type PatternSummaryResponse struct {
	UserID   string `json:"user_id"`
	TopHours []int  `json:"top_hours"`
}
