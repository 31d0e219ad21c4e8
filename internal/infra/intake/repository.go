package intake

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=intake

// Repository supplies the day's intake snapshot and the caller-computed
// historical pattern summary. The core never mines raw history itself.
type Repository interface {
	GetDailyIntake(ctx context.Context, userID string, day time.Time) (*DailyIntakeResponse, error)
	GetPatternSummary(ctx context.Context, userID string) (*PatternSummaryResponse, error)
}
