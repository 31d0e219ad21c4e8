package domain

import "context"

//go:generate mockgen -source=streak_repository.go -destination=streak_repository_mock.go -package=domain

// StreakRepository stores the per-user StreakState. Absence is reported as
// ErrStreakStateNotFound.
type StreakRepository interface {
	GetStreakState(ctx context.Context, userID string) (*StreakState, error)
	SaveStreakState(ctx context.Context, state *StreakState) error
	DeleteStreakState(ctx context.Context, userID string) error
}
