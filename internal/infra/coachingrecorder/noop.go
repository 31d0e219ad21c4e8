package coachingrecorder

import (
	"context"

	"github.com/mealping/mealping-coaching-core/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.CoachingResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordRun(_ context.Context, _ domain.CoachingRunRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
