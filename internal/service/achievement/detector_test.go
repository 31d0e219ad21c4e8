package achievement

import (
	"testing"
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

// 2026-03-02 is a Monday, 2026-03-07 a Saturday.
func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}

func status(t *testing.T, date time.Time, target, consumed float64) domain.DailyStatus {
	t.Helper()
	s, err := domain.NewDailyStatus(date, target, consumed)
	if err != nil {
		t.Fatalf("NewDailyStatus() error = %v", err)
	}
	return s
}

func kinds(events []domain.AchievementEvent) map[domain.AchievementKind]bool {
	set := make(map[domain.AchievementKind]bool, len(events))
	for _, e := range events {
		set[e.Kind] = true
	}
	return set
}

func TestDetectFirstEverAndFirstToday(t *testing.T) {
	detector := NewDetector()
	state := domain.NewStreakState("user-1")
	date := at(t, "2026-03-02T12:00:00Z")

	contributions := []domain.ContributionEvent{
		{At: at(t, "2026-03-02T11:30:00Z"), Source: "water", Amount: 10},
	}

	events := detector.Detect(date, status(t, date, 100, 10), contributions, state)
	got := kinds(events)

	if !got[domain.AchievementFirstEver] {
		t.Errorf("first_ever not detected on first contribution")
	}
	if !got[domain.AchievementFirstToday] {
		t.Errorf("first_today not detected on first contribution")
	}
}

func TestDetectFirstEverOnlyOnceAcrossDays(t *testing.T) {
	detector := NewDetector()
	state := domain.NewStreakState("user-1")

	day1 := at(t, "2026-03-02T12:00:00Z")
	contributions := []domain.ContributionEvent{
		{At: day1, Source: "water", Amount: 10},
	}

	events := detector.Detect(day1, status(t, day1, 100, 10), contributions, state)
	detector.MarkEmitted(state, events)

	day2 := at(t, "2026-03-03T12:00:00Z")
	events = detector.Detect(day2, status(t, day2, 100, 10), contributions, state)
	got := kinds(events)

	if got[domain.AchievementFirstEver] {
		t.Errorf("first_ever re-detected after day rollover")
	}
	if !got[domain.AchievementFirstToday] {
		t.Errorf("first_today not re-detected on a new day")
	}
}

func TestDetectAtMostOncePerDay(t *testing.T) {
	detector := NewDetector()
	state := domain.NewStreakState("user-1")
	date := at(t, "2026-03-02T12:00:00Z")

	contributions := []domain.ContributionEvent{
		{At: date, Source: "meal", Amount: 30},
	}

	events := detector.Detect(date, status(t, date, 100, 30), contributions, state)
	if len(events) == 0 {
		t.Fatalf("no achievements detected on first pass")
	}
	detector.MarkEmitted(state, events)

	// The identical snapshot later in the day produces nothing new.
	repeat := detector.Detect(date.Add(time.Hour), status(t, date, 100, 30), contributions, state)
	if len(repeat) != 0 {
		t.Errorf("repeated detection emitted %v, want none", kinds(repeat))
	}
}

func TestDetectHighestMilestoneOnly(t *testing.T) {
	detector := NewDetector()
	state := domain.NewStreakState("user-1")
	date := at(t, "2026-03-02T12:00:00Z")

	contributions := []domain.ContributionEvent{
		{At: date, Source: "meal", Amount: 80},
	}

	// Progress jumps straight to 80%; only the 75 milestone fires, the
	// skipped 25 and 50 are never back-filled.
	events := detector.Detect(date, status(t, date, 100, 80), contributions, state)
	got := kinds(events)

	if !got[domain.AchievementMilestone75] {
		t.Errorf("milestone_75 not detected at 80%% progress")
	}
	if got[domain.AchievementMilestone50] || got[domain.AchievementMilestone25] {
		t.Errorf("skipped milestones back-filled: %v", got)
	}
	detector.MarkEmitted(state, events)

	// Crossing 100 later the same day fires exactly the 100 milestone.
	events = detector.Detect(date.Add(2*time.Hour), status(t, date, 100, 105), contributions, state)
	got = kinds(events)
	if !got[domain.AchievementMilestone100] {
		t.Errorf("milestone_100 not detected after crossing the target")
	}
	if got[domain.AchievementMilestone75] {
		t.Errorf("milestone_75 re-emitted")
	}
}

func TestDetectEarlyBird(t *testing.T) {
	detector := NewDetector()
	date := at(t, "2026-03-02T12:00:00Z")

	tests := []struct {
		name          string
		contributions []domain.ContributionEvent
		want          bool
	}{
		{
			name: "meaningful contribution before nine",
			contributions: []domain.ContributionEvent{
				{At: at(t, "2026-03-02T07:30:00Z"), Source: "breakfast", Amount: 20},
			},
			want: true,
		},
		{
			name: "token early entry does not count",
			contributions: []domain.ContributionEvent{
				{At: at(t, "2026-03-02T07:30:00Z"), Source: "sip", Amount: 2},
			},
			want: false,
		},
		{
			name: "nine o'clock is too late",
			contributions: []domain.ContributionEvent{
				{At: at(t, "2026-03-02T09:00:00Z"), Source: "breakfast", Amount: 20},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.NewStreakState("user-1")
			events := detector.Detect(date, status(t, date, 100, 20), tt.contributions, state)
			if got := kinds(events)[domain.AchievementEarlyBird]; got != tt.want {
				t.Errorf("early_bird = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectNightOwl(t *testing.T) {
	detector := NewDetector()
	state := domain.NewStreakState("user-1")
	date := at(t, "2026-03-02T22:00:00Z")

	// Night owl keys on the day's first contribution being late.
	contributions := []domain.ContributionEvent{
		{At: at(t, "2026-03-02T21:30:00Z"), Source: "dinner", Amount: 40},
	}

	events := detector.Detect(date, status(t, date, 100, 40), contributions, state)
	if !kinds(events)[domain.AchievementNightOwl] {
		t.Errorf("night_owl not detected for a first contribution after nine pm")
	}
}

func TestDetectNightOwlIgnoresPayloadOrder(t *testing.T) {
	detector := NewDetector()
	state := domain.NewStreakState("user-1")
	date := at(t, "2026-03-02T22:00:00Z")

	// The late dinner arrives first in the payload, but the day's earliest
	// contribution was at breakfast.
	contributions := []domain.ContributionEvent{
		{At: at(t, "2026-03-02T21:30:00Z"), Source: "dinner", Amount: 40},
		{At: at(t, "2026-03-02T08:00:00Z"), Source: "breakfast", Amount: 3},
	}

	events := detector.Detect(date, status(t, date, 100, 43), contributions, state)
	if kinds(events)[domain.AchievementNightOwl] {
		t.Errorf("night_owl detected although the day's first contribution was at eight am")
	}
}

func TestDetectWeekendWarrior(t *testing.T) {
	detector := NewDetector()

	saturday := at(t, "2026-03-07T20:00:00Z")
	monday := at(t, "2026-03-02T20:00:00Z")

	contributions := []domain.ContributionEvent{
		{At: saturday, Source: "meal", Amount: 100},
	}

	state := domain.NewStreakState("user-1")
	events := detector.Detect(saturday, status(t, saturday, 100, 110), contributions, state)
	if !kinds(events)[domain.AchievementWeekendWarrior] {
		t.Errorf("weekend_warrior not detected on a Saturday target hit")
	}

	state = domain.NewStreakState("user-2")
	events = detector.Detect(monday, status(t, monday, 100, 110), contributions, state)
	if kinds(events)[domain.AchievementWeekendWarrior] {
		t.Errorf("weekend_warrior detected on a Monday")
	}
}

func TestDetectPrecisionAndOverachiever(t *testing.T) {
	detector := NewDetector()
	date := at(t, "2026-03-02T20:00:00Z")

	tests := []struct {
		name         string
		consumed     float64
		precision    bool
		overachiever bool
	}{
		{"exact hit", 100, true, false},
		{"within tolerance", 104, true, false},
		{"past tolerance", 110, false, false},
		{"overachiever threshold", 150, false, true},
		{"well past", 200, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.NewStreakState("user-1")
			events := detector.Detect(date, status(t, date, 100, tt.consumed), nil, state)
			got := kinds(events)
			if got[domain.AchievementPrecision] != tt.precision {
				t.Errorf("precision_finish = %v, want %v", got[domain.AchievementPrecision], tt.precision)
			}
			if got[domain.AchievementOverachiever] != tt.overachiever {
				t.Errorf("overachiever = %v, want %v", got[domain.AchievementOverachiever], tt.overachiever)
			}
		})
	}
}

func TestDetectVariety(t *testing.T) {
	detector := NewDetector()
	state := domain.NewStreakState("user-1")
	date := at(t, "2026-03-02T18:00:00Z")

	contributions := []domain.ContributionEvent{
		{At: date, Source: "breakfast", Amount: 10},
		{At: date, Source: "snack", Amount: 10},
		{At: date, Source: "lunch", Amount: 10},
		{At: date, Source: "smoothie", Amount: 10},
		{At: date, Source: "snack", Amount: 10},
	}

	// Four distinct sources, one repeated; not enough.
	events := detector.Detect(date, status(t, date, 100, 50), contributions, state)
	if kinds(events)[domain.AchievementVariety] {
		t.Errorf("variety detected with only four distinct sources")
	}

	contributions = append(contributions, domain.ContributionEvent{
		At: date, Source: "dinner", Amount: 10,
	})
	events = detector.Detect(date, status(t, date, 100, 60), contributions, state)
	if !kinds(events)[domain.AchievementVariety] {
		t.Errorf("variety not detected with five distinct sources")
	}
}

func TestDetectComeback(t *testing.T) {
	detector := NewDetector()
	date := at(t, "2026-03-02T20:00:00Z")

	state := domain.NewStreakState("user-1")
	state.CurrentStreak = 1
	state.BestStreak = 9

	events := detector.Detect(date, status(t, date, 100, 100), nil, state)
	if !kinds(events)[domain.AchievementComeback] {
		t.Errorf("comeback not detected on a fresh streak after a longer best")
	}

	// A first-ever streak of one is not a comeback.
	state = domain.NewStreakState("user-2")
	state.CurrentStreak = 1
	state.BestStreak = 1

	events = detector.Detect(date, status(t, date, 100, 100), nil, state)
	if kinds(events)[domain.AchievementComeback] {
		t.Errorf("comeback detected without an earlier longer streak")
	}
}
