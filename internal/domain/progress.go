package domain

import (
	"math"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey formats an instant as the calendar-day key used for streak crediting
// and daily achievement deduplication.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(dayKeyLayout, key)
}

// DailyStatus is the running total for one calendar day against its target.
type DailyStatus struct {
	Day      string  `json:"day"`
	Target   float64 `json:"target"`
	Consumed float64 `json:"consumed"`
}

func NewDailyStatus(day time.Time, target, consumed float64) (DailyStatus, error) {
	if err := ValidateAmounts(target, consumed); err != nil {
		return DailyStatus{}, err
	}
	return DailyStatus{
		Day:      DayKey(day),
		Target:   target,
		Consumed: consumed,
	}, nil
}

func (d DailyStatus) Remaining() float64 {
	if d.Consumed >= d.Target {
		return 0
	}
	return d.Target - d.Consumed
}

func (d DailyStatus) TargetHit() bool {
	return d.Consumed >= d.Target
}

// ProgressPercent returns consumed/target as a percentage, uncapped.
func (d DailyStatus) ProgressPercent() float64 {
	if d.Target <= 0 {
		return 0
	}
	return d.Consumed / d.Target * 100
}

// ValidateAmounts rejects non-finite or negative amounts and non-positive
// targets before any state is touched.
func ValidateAmounts(target, consumed float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return ErrInvalidTarget
	}
	if math.IsNaN(consumed) || math.IsInf(consumed, 0) || consumed < 0 {
		return ErrInvalidConsumed
	}
	return nil
}

// ContributionEvent is a single intake entry logged during the day.
type ContributionEvent struct {
	At     time.Time `json:"at"`
	Source string    `json:"source"`
	Amount float64   `json:"amount"`
}
