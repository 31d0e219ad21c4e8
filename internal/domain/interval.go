package domain

import (
	"sort"
	"time"
)

// BusyInterval is a half-open [Start, End) block of occupied time supplied by
// the calendar provider. The core never owns or mutates these.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewBusyInterval(start, end time.Time) BusyInterval {
	return BusyInterval{Start: start, End: end}
}

func (b BusyInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Overlaps reports whether two intervals share any time. Half-open semantics:
// touching endpoints do not overlap.
func (b BusyInterval) Overlaps(other BusyInterval) bool {
	return b.Start.Before(other.End) && other.Start.Before(b.End)
}

// CountBackToBack counts adjacent pairs (by start order) separated by less
// than gapThreshold. Zero or one intervals yield 0.
func CountBackToBack(intervals []BusyInterval, gapThreshold time.Duration) int {
	if len(intervals) < 2 {
		return 0
	}

	sorted := make([]BusyInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	count := 0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Start.Sub(sorted[i-1].End)
		if gap < gapThreshold {
			count++
		}
	}

	return count
}
