package booking

import (
	"context"
	"fmt"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// CreateBooking stores booking unless the patient already holds a booking for
// the same treatment on the same date, whatever its slot. A conflict is not an
// error: it yields Success=false together with the existing booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking *models.Booking) (models.BookingOutcome, error) {
	existing, err := s.Bookings.InsertIfAbsent(ctx, booking)
	if err != nil {
		return models.BookingOutcome{}, fmt.Errorf("failed to create booking: %w", err)
	}
	if existing != nil {
		s.logger().Info("Duplicate booking rejected",
			zap.String("treatment", booking.Treatment),
			zap.String("date", booking.Date),
			zap.String("patient", booking.Patient),
			zap.String("existingID", existing.ID.Hex()),
		)
		return models.BookingOutcome{Success: false, Booking: existing}, nil
	}

	s.enqueueConfirmation(ctx, booking)
	return models.BookingOutcome{
		Success: true,
		Result: &models.BookingInsertResult{
			Acknowledged: true,
			InsertedID:   booking.ID.Hex(),
		},
	}, nil
}

// ListByPatient returns every booking held by patient.
func (s *DefaultBookingService) ListByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByPatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", patient, err)
	}
	return bookings, nil
}

// enqueueConfirmation never fails the booking: the record is already stored.
func (s *DefaultBookingService) enqueueConfirmation(ctx context.Context, b *models.Booking) {
	if s.Confirmations == nil {
		return
	}
	payload := models.ConfirmationPayload{
		BookingID: b.ID.Hex(),
		Treatment: b.Treatment,
		Date:      b.Date,
		Slot:      b.Slot,
		Patient:   b.Patient,
	}
	if err := s.Confirmations.EnqueueConfirmation(ctx, payload); err != nil {
		s.logger().Warn("Failed to enqueue booking confirmation",
			zap.String("bookingID", payload.BookingID),
			zap.Error(err),
		)
	}
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}
