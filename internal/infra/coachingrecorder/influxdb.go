//go:build !gcloud

package coachingrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.CoachingResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "coaching run recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, coaching run recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "coaching run recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordRun(ctx context.Context, record domain.CoachingRunRecord) error {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	point := influxdb2.NewPoint(
		"coaching_run",
		map[string]string{
			"run_id":       runID,
			"user_id":      record.UserID,
			"stress_level": record.StressLevel,
			"time_of_day":  record.TimeOfDay,
		},
		map[string]any{
			"day":                record.Day,
			"virtual_now_unix":   record.VirtualNow.Unix(),
			"available_minutes":  record.AvailableMinutes,
			"remaining_amount":   record.RemainingAmount,
			"current_streak":     record.CurrentStreak,
			"reminders_planned":  record.RemindersPlanned,
			"achievements_fired": record.AchievementsFired,
			"badges_awarded":     record.BadgesAwarded,
			"leveled_up":         record.LeveledUp,
		},
		time.Now(),
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write coaching run to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID),
			slog.String("day", record.Day),
		)
	}

	return nil
}

func (r *influxDBRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
