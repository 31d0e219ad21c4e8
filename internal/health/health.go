// Package health exposes liveness and readiness probes. Liveness only says
// the process is up; readiness additionally requires the streak store, since
// a coaching run that cannot commit StreakState must not be routed traffic.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	streakStoreCheck = "streak_store"
	probeTimeout     = 5 * time.Second
)

// Status reports whether a probe target can serve.
type Status string

const (
	StatusReady   Status = "ready"
	StatusDegrade Status = "degraded"
)

// DependencyCheck is the probe outcome for one dependency.
type DependencyCheck struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report is the readiness payload: overall status plus per-dependency detail.
type Report struct {
	Status  Status                     `json:"status"`
	Version string                     `json:"version,omitempty"`
	Checks  map[string]DependencyCheck `json:"checks,omitempty"`
}

// Checker probes the dependencies a coaching run needs to commit.
type Checker struct {
	streakStore *redis.Client
	version     string
}

func NewChecker(streakStore *redis.Client, version string) *Checker {
	return &Checker{
		streakStore: streakStore,
		version:     version,
	}
}

// Check probes every dependency and folds the results into one Report.
func (c *Checker) Check(ctx context.Context) *Report {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	report := &Report{
		Status:  StatusReady,
		Version: c.version,
		Checks:  make(map[string]DependencyCheck),
	}

	if c.streakStore != nil {
		check := c.probeStreakStore(probeCtx)
		report.Checks[streakStoreCheck] = check
		if check.Status != StatusReady {
			report.Status = StatusDegrade
		}
	}

	return report
}

func (c *Checker) probeStreakStore(ctx context.Context) DependencyCheck {
	start := time.Now()
	if err := c.streakStore.Ping(ctx).Err(); err != nil {
		return DependencyCheck{
			Status: StatusDegrade,
			Error:  err.Error(),
		}
	}
	return DependencyCheck{
		Status:    StatusReady,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

// LiveHandler answers liveness probes without touching any dependency.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler answers readiness probes with the full dependency report.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		report := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if report.Status != StatusReady {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, report)
	}
}
