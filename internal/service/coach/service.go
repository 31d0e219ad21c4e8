package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
	"github.com/mealping/mealping-coaching-core/internal/infra/calendar"
	"github.com/mealping/mealping-coaching-core/internal/infra/delivery"
	"github.com/mealping/mealping-coaching-core/internal/infra/intake"
	"github.com/mealping/mealping-coaching-core/internal/observability/metrics"
	"github.com/mealping/mealping-coaching-core/internal/observability/tracing"
	"github.com/mealping/mealping-coaching-core/internal/service/achievement"
	"github.com/mealping/mealping-coaching-core/internal/service/ledger"
	"github.com/mealping/mealping-coaching-core/internal/service/planner"
	"github.com/mealping/mealping-coaching-core/internal/service/schedule"
)

// Service orchestrates one coaching run: schedule analysis, ledger
// evaluation, achievement detection and reminder planning, with the
// per-user StreakState mutation serialized behind a keyed lock.
type Service struct {
	calendarRepo    calendar.Repository
	intakeRepo      intake.Repository
	streakRepo      domain.StreakRepository
	deliveryQueue   delivery.Queue
	recorder        domain.CoachingResultRecorder
	analyzer        *schedule.Analyzer
	ledger          *ledger.Service
	detector        *achievement.Detector
	planner         *planner.Service
	coachingMetrics *metrics.CoachingMetrics
	windowStartHour int
	windowEndHour   int
	defaultTarget   float64
	locks           *userLocks
}

func NewService(
	calendarRepo calendar.Repository,
	intakeRepo intake.Repository,
	streakRepo domain.StreakRepository,
	deliveryQueue delivery.Queue,
	recorder domain.CoachingResultRecorder,
	analyzer *schedule.Analyzer,
	ledgerService *ledger.Service,
	detector *achievement.Detector,
	plannerService *planner.Service,
	coachingMetrics *metrics.CoachingMetrics,
	windowStartHour, windowEndHour int,
	defaultTarget float64,
) *Service {
	return &Service{
		calendarRepo:    calendarRepo,
		intakeRepo:      intakeRepo,
		streakRepo:      streakRepo,
		deliveryQueue:   deliveryQueue,
		recorder:        recorder,
		analyzer:        analyzer,
		ledger:          ledgerService,
		detector:        detector,
		planner:         plannerService,
		coachingMetrics: coachingMetrics,
		windowStartHour: windowStartHour,
		windowEndHour:   windowEndHour,
		defaultTarget:   defaultTarget,
		locks:           newUserLocks(),
	}
}

func (s *Service) RunCoaching(ctx context.Context, userID string, now time.Time, runID string) (*Response, error) {
	lock := s.locks.forUser(userID)
	lock.Lock()
	defer lock.Unlock()

	ctx, span := tracing.StartCoachingRunSpan(ctx, userID, now)
	defer span.End()
	runStart := time.Now()

	busy, err := s.calendarRepo.GetBusyIntervals(ctx, userID, now)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch busy intervals, assuming empty schedule",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		busy = nil
	}

	intakeResp, err := s.intakeRepo.GetDailyIntake(ctx, userID, now)
	if err != nil {
		tracing.RecordError(span, err)
		if s.coachingMetrics != nil {
			s.coachingMetrics.RecordRun(ctx, "intake_fetch_failed")
		}
		return nil, fmt.Errorf("failed to fetch daily intake: %w", err)
	}

	target := intakeResp.Target
	if target <= 0 {
		target = s.defaultTarget
	}

	contributions := make([]domain.ContributionEvent, 0, len(intakeResp.Contributions))
	for _, c := range intakeResp.Contributions {
		contributions = append(contributions, domain.ContributionEvent{
			At:     c.At,
			Source: c.Source,
			Amount: c.Amount,
		})
	}

	state, err := s.loadOrCreateState(ctx, userID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	analysisStart := time.Now()
	_, analysisSpan := tracing.StartScheduleAnalysisSpan(ctx, len(busy))
	assessment := s.analyzer.Analyze(now, busy)
	analysisSpan.End()
	if s.coachingMetrics != nil {
		s.coachingMetrics.RecordAnalysisDuration(ctx, time.Since(analysisStart))
		s.coachingMetrics.RecordStressLevel(ctx, assessment.StressLevel.String())
	}

	_, ledgerSpan := tracing.StartLedgerEvaluationSpan(ctx, domain.DayKey(now))
	result, err := s.ledger.EvaluateDay(now, intakeResp.Consumed, target, state)
	ledgerSpan.End()
	if err != nil {
		tracing.RecordError(span, err)
		if s.coachingMetrics != nil {
			s.coachingMetrics.RecordRun(ctx, "validation_failed")
		}
		return nil, fmt.Errorf("ledger evaluation rejected: %w", err)
	}

	if result.StreakChanged && result.State.CurrentStreak == 0 && s.coachingMetrics != nil {
		s.coachingMetrics.RecordStreakReset(ctx)
	}

	events := s.detector.Detect(now, result.Status, contributions, result.State)
	s.detector.MarkEmitted(result.State, events)
	if s.coachingMetrics != nil {
		for _, event := range events {
			s.coachingMetrics.RecordAchievement(ctx, event.Kind.String())
		}
		if len(result.NewBadges) > 0 {
			s.coachingMetrics.RecordBadgesAwarded(ctx, len(result.NewBadges))
		}
	}

	plan := s.planReminders(ctx, userID, now, assessment, result.Status)

	if err := s.streakRepo.SaveStreakState(ctx, result.State); err != nil {
		tracing.RecordError(span, err)
		if s.coachingMetrics != nil {
			s.coachingMetrics.RecordRun(ctx, "save_failed")
		}
		return nil, fmt.Errorf("failed to save streak state: %w", err)
	}

	enqueued := s.enqueueReminders(ctx, userID, plan.Reminders)

	resp := &Response{
		UserID:              userID,
		Day:                 result.Status.Day,
		Now:                 now,
		Assessment:          assessment,
		Target:              result.Status.Target,
		Consumed:            result.Status.Consumed,
		Remaining:           result.Status.Remaining(),
		CurrentStreak:       result.State.CurrentStreak,
		BestStreak:          result.State.BestStreak,
		CurrentLevel:        result.State.CurrentLevel,
		ProgressToNextLevel: domain.ProgressToNextLevel(result.State.CurrentStreak),
		LevelUp:             result.LevelUp,
		NewBadges:           result.NewBadges,
		Achievements:        events,
		Reminders:           plan.Reminders,
		RemindersEnqueued:   enqueued,
		ReminderSkipped:     plan.Skipped,
		SkipReason:          plan.SkipReason,
	}

	s.recordRun(ctx, runID, now, resp)

	if s.coachingMetrics != nil {
		s.coachingMetrics.RecordRun(ctx, "completed")
		s.coachingMetrics.RecordRunDuration(ctx, time.Since(runStart))
	}

	slog.InfoContext(ctx, "coaching run completed",
		slog.String("user_id", userID),
		slog.String("day", resp.Day),
		slog.String("stress_level", assessment.StressLevel.String()),
		slog.Int("current_streak", resp.CurrentStreak),
		slog.Int("achievements", len(events)),
		slog.Int("reminders_planned", len(plan.Reminders)),
	)

	return resp, nil
}

// Assess runs the schedule analyzer alone. Stateless, no lock needed.
func (s *Service) Assess(ctx context.Context, userID string, now time.Time, slotDuration time.Duration) (*domain.ScheduleAssessment, error) {
	busy, err := s.calendarRepo.GetBusyIntervals(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch busy intervals: %w", err)
	}

	assessment := s.analyzer.AnalyzeWithDuration(now, busy, slotDuration)
	return &assessment, nil
}

func (s *Service) loadOrCreateState(ctx context.Context, userID string) (*domain.StreakState, error) {
	state, err := s.streakRepo.GetStreakState(ctx, userID)
	if err == nil {
		return state, nil
	}
	if errors.Is(err, domain.ErrStreakStateNotFound) {
		slog.DebugContext(ctx, "creating streak state for first evaluation",
			slog.String("user_id", userID),
		)
		return domain.NewStreakState(userID), nil
	}
	return nil, fmt.Errorf("failed to load streak state: %w", err)
}

func (s *Service) planReminders(ctx context.Context, userID string, now time.Time, assessment domain.ScheduleAssessment, status domain.DailyStatus) *planner.Plan {
	windowEnd := time.Date(now.Year(), now.Month(), now.Day(), s.windowEndHour, 0, 0, 0, now.Location())
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), s.windowStartHour, 0, 0, 0, now.Location())

	remaining := status.Remaining()

	_, planSpan := tracing.StartReminderPlanningSpan(ctx, remaining)
	defer planSpan.End()

	if now.Before(windowStart) {
		return &planner.Plan{Reminders: []domain.PlannedReminder{}, Skipped: true, SkipReason: "outside eating window"}
	}

	patternHours := s.fetchPatternHours(ctx, userID)

	plan := s.planner.PlanReminders(planner.Input{
		Now:          now,
		WindowEnd:    windowEnd,
		Remaining:    remaining,
		Assessment:   assessment,
		PatternHours: patternHours,
	})

	if s.coachingMetrics != nil && len(plan.Reminders) > 0 {
		s.coachingMetrics.RecordRemindersPlanned(ctx, len(plan.Reminders), plan.Urgent)
	}

	return plan
}

// fetchPatternHours is best-effort: planning proceeds without history when
// the intake service cannot provide it.
func (s *Service) fetchPatternHours(ctx context.Context, userID string) []int {
	summary, err := s.intakeRepo.GetPatternSummary(ctx, userID)
	if err != nil {
		slog.DebugContext(ctx, "pattern summary unavailable",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return summary.TopHours
}

func (s *Service) enqueueReminders(ctx context.Context, userID string, reminders []domain.PlannedReminder) int {
	if s.deliveryQueue == nil {
		return 0
	}

	enqueued := 0
	for _, reminder := range reminders {
		_, err := s.deliveryQueue.EnqueueReminder(ctx, &delivery.ReminderTask{
			Identifier:      reminder.Identifier,
			UserID:          userID,
			FireAt:          reminder.FireAt,
			RemainingAmount: reminder.RemainingAmount,
			SuggestionText:  reminder.SuggestionText,
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to enqueue reminder",
				slog.String("user_id", userID),
				slog.String("identifier", reminder.Identifier),
				slog.String("error", err.Error()),
			)
			continue
		}
		enqueued++
	}

	return enqueued
}

func (s *Service) recordRun(ctx context.Context, runID string, now time.Time, resp *Response) {
	if s.recorder == nil {
		return
	}

	record := domain.CoachingRunRecord{
		RunID:             runID,
		UserID:            resp.UserID,
		Day:               resp.Day,
		VirtualNow:        now,
		StressLevel:       resp.Assessment.StressLevel.String(),
		TimeOfDay:         resp.Assessment.TimeOfDay.String(),
		AvailableMinutes:  resp.Assessment.AvailableMinutes,
		RemainingAmount:   resp.Remaining,
		CurrentStreak:     resp.CurrentStreak,
		RemindersPlanned:  len(resp.Reminders),
		AchievementsFired: len(resp.Achievements),
		BadgesAwarded:     len(resp.NewBadges),
		LeveledUp:         resp.LevelUp != nil,
	}

	if err := s.recorder.RecordRun(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record coaching run",
			slog.String("user_id", resp.UserID),
			slog.String("error", err.Error()),
		)
	}
}
