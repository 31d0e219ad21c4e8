package coach

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/mealping/mealping-coaching-core/internal/domain"
	"github.com/mealping/mealping-coaching-core/internal/infra/calendar"
	"github.com/mealping/mealping-coaching-core/internal/infra/delivery"
	"github.com/mealping/mealping-coaching-core/internal/infra/intake"
	"github.com/mealping/mealping-coaching-core/internal/service/achievement"
	"github.com/mealping/mealping-coaching-core/internal/service/ledger"
	"github.com/mealping/mealping-coaching-core/internal/service/planner"
	"github.com/mealping/mealping-coaching-core/internal/service/schedule"
)

type fixture struct {
	calendarRepo *calendar.MockRepository
	intakeRepo   *intake.MockRepository
	streakRepo   *domain.MockStreakRepository
	queue        *delivery.MockQueue
	service      *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		calendarRepo: calendar.NewMockRepository(ctrl),
		intakeRepo:   intake.NewMockRepository(ctrl),
		streakRepo:   domain.NewMockStreakRepository(ctrl),
		queue:        delivery.NewMockQueue(ctrl),
	}

	f.service = NewService(
		f.calendarRepo,
		f.intakeRepo,
		f.streakRepo,
		f.queue,
		nil,
		schedule.NewAnalyzer(15*time.Minute, 22),
		ledger.NewService(),
		achievement.NewDetector(),
		planner.NewService(10, 15),
		nil,
		7, 21,
		100,
	)
	return f
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}

func TestRunCoachingFullRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := at(t, "2026-03-02T19:00:00Z")

	f.calendarRepo.EXPECT().
		GetBusyIntervals(gomock.Any(), "user-1", now).
		Return(nil, nil)

	f.intakeRepo.EXPECT().
		GetDailyIntake(gomock.Any(), "user-1", now).
		Return(&intake.DailyIntakeResponse{
			UserID:   "user-1",
			Day:      "2026-03-02",
			Target:   100,
			Consumed: 40,
			Contributions: []intake.ContributionResponse{
				{At: at(t, "2026-03-02T08:00:00Z"), Source: "breakfast", Amount: 40},
			},
		}, nil)

	f.intakeRepo.EXPECT().
		GetPatternSummary(gomock.Any(), "user-1").
		Return(&intake.PatternSummaryResponse{UserID: "user-1", TopHours: nil}, nil)

	f.streakRepo.EXPECT().
		GetStreakState(gomock.Any(), "user-1").
		Return(nil, domain.ErrStreakStateNotFound)

	var saved *domain.StreakState
	f.streakRepo.EXPECT().
		SaveStreakState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, state *domain.StreakState) error {
			saved = state
			return nil
		})

	f.queue.EXPECT().
		EnqueueReminder(gomock.Any(), gomock.Any()).
		Return(&delivery.TaskResponse{TaskID: "task-1", Status: "created"}, nil)

	resp, err := f.service.RunCoaching(ctx, "user-1", now, "run-1")
	if err != nil {
		t.Fatalf("RunCoaching() error = %v", err)
	}

	if resp.Day != "2026-03-02" {
		t.Errorf("Day = %q, want %q", resp.Day, "2026-03-02")
	}
	if resp.Remaining != 60 {
		t.Errorf("Remaining = %v, want 60", resp.Remaining)
	}
	// Below target: provisional zero streak.
	if resp.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", resp.CurrentStreak)
	}
	// Two hours left in the eating window: one midpoint reminder.
	if len(resp.Reminders) != 1 {
		t.Fatalf("Reminders = %d, want 1", len(resp.Reminders))
	}
	want := at(t, "2026-03-02T20:00:00Z")
	if !resp.Reminders[0].FireAt.Equal(want) {
		t.Errorf("FireAt = %v, want %v", resp.Reminders[0].FireAt, want)
	}
	if resp.RemindersEnqueued != 1 {
		t.Errorf("RemindersEnqueued = %d, want 1", resp.RemindersEnqueued)
	}

	if saved == nil {
		t.Fatalf("streak state was not saved")
	}
	if saved.LastEvaluatedDay != "2026-03-02" {
		t.Errorf("saved LastEvaluatedDay = %q, want %q", saved.LastEvaluatedDay, "2026-03-02")
	}
	// First contribution of the day was detected and committed.
	if !saved.TodaysAchievementKeys[domain.AchievementFirstToday.String()] {
		t.Errorf("first_today not marked emitted on the saved state")
	}
}

func TestRunCoachingToleratesCalendarFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := at(t, "2026-03-02T19:00:00Z")

	f.calendarRepo.EXPECT().
		GetBusyIntervals(gomock.Any(), "user-1", now).
		Return(nil, errors.New("calendar provider down"))

	f.intakeRepo.EXPECT().
		GetDailyIntake(gomock.Any(), "user-1", now).
		Return(&intake.DailyIntakeResponse{Target: 100, Consumed: 110}, nil)

	f.intakeRepo.EXPECT().
		GetPatternSummary(gomock.Any(), "user-1").
		Return(nil, errors.New("no history"))

	f.streakRepo.EXPECT().
		GetStreakState(gomock.Any(), "user-1").
		Return(domain.NewStreakState("user-1"), nil)

	f.streakRepo.EXPECT().
		SaveStreakState(gomock.Any(), gomock.Any()).
		Return(nil)

	resp, err := f.service.RunCoaching(ctx, "user-1", now, "run-1")
	if err != nil {
		t.Fatalf("RunCoaching() error = %v", err)
	}

	// Target hit on an empty assumed schedule: streak credited, nothing to
	// remind about.
	if resp.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", resp.CurrentStreak)
	}
	if !resp.ReminderSkipped {
		t.Errorf("ReminderSkipped = false, want true with target hit")
	}
	if resp.Assessment.StressLevel != domain.StressLow {
		t.Errorf("StressLevel = %v, want %v", resp.Assessment.StressLevel, domain.StressLow)
	}
}

func TestRunCoachingFailsWhenIntakeUnavailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := at(t, "2026-03-02T19:00:00Z")

	f.calendarRepo.EXPECT().
		GetBusyIntervals(gomock.Any(), "user-1", now).
		Return(nil, nil)

	f.intakeRepo.EXPECT().
		GetDailyIntake(gomock.Any(), "user-1", now).
		Return(nil, errors.New("intake service down"))

	_, err := f.service.RunCoaching(ctx, "user-1", now, "run-1")
	if err == nil {
		t.Fatalf("RunCoaching() error = nil, want intake failure")
	}
}

func TestRunCoachingFailsWhenSaveFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := at(t, "2026-03-02T19:00:00Z")

	f.calendarRepo.EXPECT().
		GetBusyIntervals(gomock.Any(), "user-1", now).
		Return(nil, nil)

	f.intakeRepo.EXPECT().
		GetDailyIntake(gomock.Any(), "user-1", now).
		Return(&intake.DailyIntakeResponse{Target: 100, Consumed: 50}, nil)

	f.intakeRepo.EXPECT().
		GetPatternSummary(gomock.Any(), "user-1").
		Return(nil, errors.New("no history"))

	f.streakRepo.EXPECT().
		GetStreakState(gomock.Any(), "user-1").
		Return(domain.NewStreakState("user-1"), nil)

	f.streakRepo.EXPECT().
		SaveStreakState(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	_, err := f.service.RunCoaching(ctx, "user-1", now, "run-1")
	if err == nil {
		t.Fatalf("RunCoaching() error = nil, want save failure")
	}
}

func TestRunCoachingRejectsInvalidAmounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := at(t, "2026-03-02T19:00:00Z")

	f.calendarRepo.EXPECT().
		GetBusyIntervals(gomock.Any(), "user-1", now).
		Return(nil, nil)

	// A non-positive target is replaced by the default before evaluation,
	// so a negative consumed amount is the failure that reaches the ledger.
	f.intakeRepo.EXPECT().
		GetDailyIntake(gomock.Any(), "user-1", now).
		Return(&intake.DailyIntakeResponse{Target: 100, Consumed: -5}, nil)

	f.streakRepo.EXPECT().
		GetStreakState(gomock.Any(), "user-1").
		Return(domain.NewStreakState("user-1"), nil)

	_, err := f.service.RunCoaching(ctx, "user-1", now, "run-1")
	if !errors.Is(err, domain.ErrInvalidConsumed) {
		t.Fatalf("RunCoaching() error = %v, want %v", err, domain.ErrInvalidConsumed)
	}
}

func TestRunCoachingSerializesPerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := at(t, "2026-03-02T19:00:00Z")

	// In-memory repository backed by a plain map. The per-user lock inside
	// the service is what keeps this safe; the test fails under -race if it
	// does not.
	states := make(map[string]*domain.StreakState)

	f.calendarRepo.EXPECT().
		GetBusyIntervals(gomock.Any(), "user-1", now).
		Return(nil, nil).
		AnyTimes()

	f.intakeRepo.EXPECT().
		GetDailyIntake(gomock.Any(), "user-1", now).
		Return(&intake.DailyIntakeResponse{Target: 100, Consumed: 120}, nil).
		AnyTimes()

	f.intakeRepo.EXPECT().
		GetPatternSummary(gomock.Any(), "user-1").
		Return(nil, errors.New("no history")).
		AnyTimes()

	f.streakRepo.EXPECT().
		GetStreakState(gomock.Any(), "user-1").
		DoAndReturn(func(_ context.Context, userID string) (*domain.StreakState, error) {
			if state, ok := states[userID]; ok {
				return state.Clone(), nil
			}
			return nil, domain.ErrStreakStateNotFound
		}).
		AnyTimes()

	f.streakRepo.EXPECT().
		SaveStreakState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, state *domain.StreakState) error {
			states[state.UserID] = state.Clone()
			return nil
		}).
		AnyTimes()

	const runs = 8
	var wg sync.WaitGroup
	wg.Add(runs)
	for i := 0; i < runs; i++ {
		go func() {
			defer wg.Done()
			if _, err := f.service.RunCoaching(ctx, "user-1", now, "run"); err != nil {
				t.Errorf("RunCoaching() error = %v", err)
			}
		}()
	}
	wg.Wait()

	// However many runs raced, the day is credited exactly once.
	if states["user-1"].CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after concurrent runs", states["user-1"].CurrentStreak)
	}
}

func TestAssessFetchesAndAnalyzes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := at(t, "2026-03-02T10:00:00Z")

	f.calendarRepo.EXPECT().
		GetBusyIntervals(gomock.Any(), "user-1", now).
		Return([]domain.BusyInterval{
			domain.NewBusyInterval(at(t, "2026-03-02T10:00:00Z"), at(t, "2026-03-02T11:00:00Z")),
		}, nil)

	assessment, err := f.service.Assess(ctx, "user-1", now, 0)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if assessment.NextFreeSlot == nil {
		t.Fatalf("NextFreeSlot = nil")
	}
	want := at(t, "2026-03-02T11:00:00Z")
	if !assessment.NextFreeSlot.Equal(want) {
		t.Errorf("NextFreeSlot = %v, want %v", assessment.NextFreeSlot, want)
	}
	if assessment.StressLevel != domain.StressMedium {
		t.Errorf("StressLevel = %v, want %v", assessment.StressLevel, domain.StressMedium)
	}
}
