package delivery

import (
	"context"
	"time"
)

//go:generate mockgen -source=queue.go -destination=mock.go -package=delivery

// ReminderTask is the payload handed to the delivery collaborator. The
// collaborator owns actual scheduling, cancellation and presentation.
type ReminderTask struct {
	Identifier      string    `json:"identifier"`
	UserID          string    `json:"user_id"`
	FireAt          time.Time `json:"fire_at"`
	RemainingAmount float64   `json:"remaining_amount"`
	SuggestionText  string    `json:"suggestion_text"`
}

type TaskResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// Queue accepts planned reminders for delivery at their fire time.
type Queue interface {
	EnqueueReminder(ctx context.Context, task *ReminderTask) (*TaskResponse, error)
}
