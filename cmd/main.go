package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/mealping/mealping-coaching-core/internal/config"
	"github.com/mealping/mealping-coaching-core/internal/handler"
	"github.com/mealping/mealping-coaching-core/internal/health"
	"github.com/mealping/mealping-coaching-core/internal/infra/calendar"
	"github.com/mealping/mealping-coaching-core/internal/infra/coachingrecorder"
	"github.com/mealping/mealping-coaching-core/internal/infra/intake"
	"github.com/mealping/mealping-coaching-core/internal/infra/repository"
	"github.com/mealping/mealping-coaching-core/internal/observability/metrics"
	"github.com/mealping/mealping-coaching-core/internal/observability/middleware"
	"github.com/mealping/mealping-coaching-core/internal/service/achievement"
	"github.com/mealping/mealping-coaching-core/internal/service/coach"
	"github.com/mealping/mealping-coaching-core/internal/service/ledger"
	"github.com/mealping/mealping-coaching-core/internal/service/planner"
	"github.com/mealping/mealping-coaching-core/internal/service/schedule"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.Delivery.Validate(); err != nil {
		slog.Error("delivery configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	coachingMetrics, err := metrics.NewCoachingMetrics()
	if err != nil {
		slog.Error("failed to initialize coaching metrics", slog.String("error", err.Error()))
		return 1
	}

	// Run recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := coachingrecorder.LoadConfig()
	runRecorder, err := coachingrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize coaching run recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := runRecorder.Close(); err != nil {
			slog.Warn("failed to close coaching run recorder", slog.String("error", err.Error()))
		}
	}()

	calendarClient := calendar.NewClient(cfg.CalendarProviderURL)
	intakeClient := intake.NewClient(cfg.IntakeHistoryURL)

	deliveryQueue, cleanup, err := initDeliveryQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize delivery queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("delivery queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	streakRepo := repository.NewStreakRepository(redisClient)

	analyzer := schedule.NewAnalyzer(
		time.Duration(cfg.Coaching.SlotMinutes)*time.Minute,
		cfg.Coaching.DayEndHour,
	)
	ledgerService := ledger.NewService()
	detector := achievement.NewDetector()
	plannerService := planner.NewService(cfg.Planner.MinRemaining, cfg.Planner.UrgentRemaining)

	coachService := coach.NewService(
		calendarClient,
		intakeClient,
		streakRepo,
		deliveryQueue,
		runRecorder,
		analyzer,
		ledgerService,
		detector,
		plannerService,
		coachingMetrics,
		cfg.Coaching.WindowStartHour,
		cfg.Coaching.WindowEndHour,
		cfg.Coaching.DefaultTarget,
	)

	coachHandler := handler.NewCoachHandler(coachService)
	scheduleHandler := handler.NewScheduleHandler(coachService)
	healthChecker := health.NewChecker(redisClient, Version)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.HTTPMetrics(httpMetrics))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/coach/run", coachHandler.HandleCoachRun)
		v1.GET("/schedule/assessment", scheduleHandler.HandleAssessment)
	}

	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("version", Version),
			slog.String("calendar_provider_url", cfg.CalendarProviderURL),
			slog.String("intake_history_url", cfg.IntakeHistoryURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("server stopped")
	return 0
}
