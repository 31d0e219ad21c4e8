//go:build gcloud

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
	env := logging.EnvProd
	if os.Getenv("APP_ENV") == "dev" {
		env = logging.EnvDev
	}

	samplingRate := 0.1
	if v := os.Getenv("OTEL_SAMPLING_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			samplingRate = parsed
		}
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:  env,
		LogLevel:     config.ParseLogLevel(os.Getenv("LOG_LEVEL")),
		SamplingRate: samplingRate,
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	})
}

func initDeliveryQueue(ctx context.Context, cfg *config.Config) (delivery.Queue, func() error, error) {
	client, err := delivery.NewCloudTasksClient(ctx, delivery.CloudTasksConfig{
		ProjectID:  cfg.Delivery.GCloudProjectID,
		LocationID: cfg.Delivery.GCloudLocationID,
		QueueID:    cfg.Delivery.GCloudQueueID,
		TargetURL:  cfg.Delivery.GCloudTargetURL,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}
