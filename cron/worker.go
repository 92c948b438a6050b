package cron

import (
	"context"
	"fmt"

	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// WorkerOptions configures the confirmation worker.
type WorkerOptions struct {
	Redis       asynq.RedisClientOpt
	Concurrency int
}

// ConfirmationWorker consumes booking confirmation tasks.
type ConfirmationWorker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// InitConfirmationWorker builds the asynq server and registers its handlers.
func InitConfirmationWorker(opts WorkerOptions, notifier notification.Notifier, logger *zap.Logger) *ConfirmationWorker {
	srv := asynq.NewServer(
		opts.Redis,
		asynq.Config{
			Concurrency: opts.Concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("ConfirmationWorker: task failed",
					zap.String("type", task.Type()),
					zap.Error(err),
				)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, HandleConfirmationTask(notifier))

	return &ConfirmationWorker{srv: srv, mux: mux}
}

// Start begins processing in background goroutines.
func (w *ConfirmationWorker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return fmt.Errorf("failed to start confirmation worker: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *ConfirmationWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleConfirmationTask delivers one confirmation through notifier.
func HandleConfirmationTask(notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseConfirmationPayload(task)
		if err != nil {
			return err
		}
		if err := notifier.NotifyBookingConfirmed(ctx, p); err != nil {
			return fmt.Errorf("failed to notify %s of booking %s: %w", p.Patient, p.BookingID, err)
		}
		return nil
	}
}
