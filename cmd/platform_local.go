//go:build !gcloud

package main

import (
	"context"
	"os"
	"strconv"

	"github.com/mealping/mealping-coaching-core/internal/config"
	"github.com/mealping/mealping-coaching-core/internal/infra/delivery"
	"github.com/mealping/mealping-coaching-core/internal/observability"
	"github.com/mealping/mealping-coaching-core/internal/observability/logging"
)

const serviceName = "mealping-coaching-core"

func initObservability(ctx context.Context) (*observability.Resources, error) {
	env := logging.EnvDev
	if os.Getenv("APP_ENV") == "prod" {
		env = logging.EnvProd
	}

	samplingRate := 1.0
	if v := os.Getenv("OTEL_SAMPLING_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			samplingRate = parsed
		}
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:  env,
		LogLevel:     config.ParseLogLevel(os.Getenv("LOG_LEVEL")),
		SamplingRate: samplingRate,
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	})
}

func initDeliveryQueue(_ context.Context, cfg *config.Config) (delivery.Queue, func() error, error) {
	client := delivery.NewMealpingTasksClient(
		cfg.Delivery.MealpingTasksURL,
		cfg.Delivery.QueueName,
		cfg.Delivery.MaxRetries,
	)
	return client, nil, nil
}
