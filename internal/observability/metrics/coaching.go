package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	coachingMeterName = "coaching.service"
)

type CoachingMetrics struct {
	runsProcessed      metric.Int64Counter
	remindersPlanned   metric.Int64Counter
	achievementsFired  metric.Int64Counter
	badgesAwarded      metric.Int64Counter
	streakResets       metric.Int64Counter
	analysisDuration   metric.Float64Histogram
	runDuration        metric.Float64Histogram
	stressDistribution metric.Int64Counter
}

func NewCoachingMetrics() (*CoachingMetrics, error) {
	meter := otel.Meter(coachingMeterName)

	runsProcessed, err := meter.Int64Counter(
		"coaching_runs_total",
		metric.WithDescription("Total number of coaching runs processed"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	remindersPlanned, err := meter.Int64Counter(
		"coaching_reminders_planned_total",
		metric.WithDescription("Total number of reminders planned"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	achievementsFired, err := meter.Int64Counter(
		"coaching_achievements_total",
		metric.WithDescription("Total number of achievement events emitted"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	badgesAwarded, err := meter.Int64Counter(
		"coaching_badges_awarded_total",
		metric.WithDescription("Total number of streak badges awarded"),
		metric.WithUnit("{badge}"),
	)
	if err != nil {
		return nil, err
	}

	streakResets, err := meter.Int64Counter(
		"coaching_streak_resets_total",
		metric.WithDescription("Total number of streak resets"),
		metric.WithUnit("{reset}"),
	)
	if err != nil {
		return nil, err
	}

	analysisDuration, err := meter.Float64Histogram(
		"coaching_schedule_analysis_duration_seconds",
		metric.WithDescription("Time spent analyzing the schedule"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"coaching_run_duration_seconds",
		metric.WithDescription("Coaching run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	stressDistribution, err := meter.Int64Counter(
		"coaching_stress_distribution_total",
		metric.WithDescription("Distribution of assessed stress levels"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	return &CoachingMetrics{
		runsProcessed:      runsProcessed,
		remindersPlanned:   remindersPlanned,
		achievementsFired:  achievementsFired,
		badgesAwarded:      badgesAwarded,
		streakResets:       streakResets,
		analysisDuration:   analysisDuration,
		runDuration:        runDuration,
		stressDistribution: stressDistribution,
	}, nil
}

func (m *CoachingMetrics) RecordRun(ctx context.Context, outcome string) {
	m.runsProcessed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *CoachingMetrics) RecordRemindersPlanned(ctx context.Context, count int, urgent bool) {
	m.remindersPlanned.Add(ctx, int64(count), metric.WithAttributes(
		attribute.Bool("urgent", urgent),
	))
}

func (m *CoachingMetrics) RecordAchievement(ctx context.Context, kind string) {
	m.achievementsFired.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *CoachingMetrics) RecordBadgesAwarded(ctx context.Context, count int) {
	m.badgesAwarded.Add(ctx, int64(count))
}

func (m *CoachingMetrics) RecordStreakReset(ctx context.Context) {
	m.streakResets.Add(ctx, 1)
}

func (m *CoachingMetrics) RecordAnalysisDuration(ctx context.Context, duration time.Duration) {
	m.analysisDuration.Record(ctx, duration.Seconds())
}

func (m *CoachingMetrics) RecordRunDuration(ctx context.Context, duration time.Duration) {
	m.runDuration.Record(ctx, duration.Seconds())
}

func (m *CoachingMetrics) RecordStressLevel(ctx context.Context, level string) {
	m.stressDistribution.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stress_level", level),
	))
}
