package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// NewConfirmationTask builds the task announcing a stored booking. Its ID is
// derived from the booking so a retried enqueue never produces a second task.
func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{
		asynq.TaskID(TypeBookingConfirmation + ":" + payload.BookingID),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// ParseConfirmationPayload decodes a task body built by NewConfirmationTask.
func ParseConfirmationPayload(task *asynq.Task) (models.ConfirmationPayload, error) {
	var p models.ConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid confirmation payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.BookingID == "" || p.Patient == "" {
		return p, fmt.Errorf("confirmation payload missing booking or patient: %w", asynq.SkipRetry)
	}
	return p, nil
}

// AsynqEnqueuer enqueues confirmation tasks on Redis.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

// EnqueueConfirmation schedules the confirmation for immediate processing.
func (e *AsynqEnqueuer) EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	task, opts, err := NewConfirmationTask(payload)
	if err != nil {
		return err
	}
	if _, err := e.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue confirmation for booking %s: %w", payload.BookingID, err)
	}
	return nil
}

// NoopEnqueuer drops confirmations; used when the queue is disabled.
type NoopEnqueuer struct{}

func (NoopEnqueuer) EnqueueConfirmation(context.Context, models.ConfirmationPayload) error {
	return nil
}
