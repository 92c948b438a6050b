package notification

import (
	"context"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// Notifier tells a patient that their booking is confirmed.
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, payload models.ConfirmationPayload) error
}

// LogNotifier records confirmations in the structured log. It is the default
// channel until an outbound one (mail, push) is configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) NotifyBookingConfirmed(ctx context.Context, p models.ConfirmationPayload) error {
	logger := n.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("Booking confirmed",
		zap.String("bookingID", p.BookingID),
		zap.String("patient", p.Patient),
		zap.String("treatment", p.Treatment),
		zap.String("date", p.Date),
		zap.String("slot", p.Slot),
	)
	return nil
}
