//go:build gcloud

package coachingrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt        time.Time `bigquery:"recorded_at"`
	RunID             string    `bigquery:"run_id"`
	UserID            string    `bigquery:"user_id"`
	Day               string    `bigquery:"day"`
	VirtualNow        time.Time `bigquery:"virtual_now"`
	StressLevel       string    `bigquery:"stress_level"`
	TimeOfDay         string    `bigquery:"time_of_day"`
	AvailableMinutes  int64     `bigquery:"available_minutes"`
	RemainingAmount   float64   `bigquery:"remaining_amount"`
	CurrentStreak     int64     `bigquery:"current_streak"`
	RemindersPlanned  int64     `bigquery:"reminders_planned"`
	AchievementsFired int64     `bigquery:"achievements_fired"`
	BadgesAwarded     int64     `bigquery:"badges_awarded"`
	LeveledUp         bool      `bigquery:"leveled_up"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.CoachingResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "coaching run recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, coaching run recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, coaching run recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "coaching run recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordRun(ctx context.Context, record domain.CoachingRunRecord) error {
	row := &bigQueryRecord{
		RecordedAt:        time.Now(),
		RunID:             record.RunID,
		UserID:            record.UserID,
		Day:               record.Day,
		VirtualNow:        record.VirtualNow,
		StressLevel:       record.StressLevel,
		TimeOfDay:         record.TimeOfDay,
		AvailableMinutes:  int64(record.AvailableMinutes),
		RemainingAmount:   record.RemainingAmount,
		CurrentStreak:     int64(record.CurrentStreak),
		RemindersPlanned:  int64(record.RemindersPlanned),
		AchievementsFired: int64(record.AchievementsFired),
		BadgesAwarded:     int64(record.BadgesAwarded),
		LeveledUp:         record.LeveledUp,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert coaching run to BigQuery",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
