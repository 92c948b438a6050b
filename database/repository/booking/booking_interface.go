package bookingRepo

import (
	"context"

	"doctorsportal/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByDate retrieves every booking on date.
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	// GetByPatient retrieves every booking of patient.
	GetByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	// InsertIfAbsent stores booking unless one with the same treatment, date
	// and patient exists. It returns the existing booking in that case and
	// nil after a successful insert, with booking.ID set.
	InsertIfAbsent(ctx context.Context, booking *models.Booking) (*models.Booking, error)
}
