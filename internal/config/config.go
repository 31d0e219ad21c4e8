package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	CalendarProviderURL string
	IntakeHistoryURL    string
	Port                string
	LogLevel            slog.Level
	Delivery            DeliveryConfig
	Redis               *RedisConfig
	Coaching            *CoachingConfig
	Planner             *PlannerConfig
}

type DeliveryConfig struct {
	MealpingTasksURL string
	QueueName        string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	queueName := os.Getenv("DELIVERY_QUEUE_NAME")
	if queueName == "" {
		queueName = "default"
	}

	maxRetries := 3
	if v := os.Getenv("DELIVERY_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		CalendarProviderURL: os.Getenv("CALENDAR_PROVIDER_URL"),
		IntakeHistoryURL:    os.Getenv("INTAKE_HISTORY_URL"),
		Port:                port,
		LogLevel:            ParseLogLevel(os.Getenv("LOG_LEVEL")),
		Delivery: DeliveryConfig{
			MealpingTasksURL: os.Getenv("MEALPING_TASKS_URL"),
			QueueName:        queueName,

			GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
			GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
			GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
			GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

			MaxRetries: maxRetries,
		},
		Redis:    redisConfig,
		Coaching: LoadCoachingConfig(),
		Planner:  LoadPlannerConfig(),
	}, nil
}

// ParseLogLevel maps a LOG_LEVEL string to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
