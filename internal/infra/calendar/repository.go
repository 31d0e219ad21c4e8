package calendar

import (
	"context"
	"time"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=calendar

// Repository supplies the user's busy intervals for a day, already resolved
// to absolute instants by the calendar provider.
type Repository interface {
	GetBusyIntervals(ctx context.Context, userID string, day time.Time) ([]domain.BusyInterval, error)
}
