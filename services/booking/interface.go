package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// BookingService lists treatments, computes open slots and records bookings.
type BookingService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ComputeAvailability(ctx context.Context, date string) ([]models.Service, error)
	CreateBooking(ctx context.Context, booking *models.Booking) (models.BookingOutcome, error)
	ListByPatient(ctx context.Context, patient string) ([]models.Booking, error)
}

// ConfirmationEnqueuer hands a booking confirmation to the background worker.
type ConfirmationEnqueuer interface {
	EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Services      serviceRepo.ServiceRepository
	Bookings      bookingRepo.BookingRepository
	Confirmations ConfirmationEnqueuer
	Logger        *zap.Logger
}

var _ BookingService = (*DefaultBookingService)(nil)
