package booking

import (
	"context"
	"errors"
	"sync"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeServiceRepo struct {
	services []models.Service
	err      error
}

func (f *fakeServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Hand out copies, as a store would.
	out := make([]models.Service, len(f.services))
	for i, s := range f.services {
		s.Slots = append([]string(nil), s.Slots...)
		out[i] = s
	}
	return out, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return f.filter(func(b models.Booking) bool { return b.Date == date })
}

func (f *fakeBookingRepo) GetByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return f.filter(func(b models.Booking) bool { return b.Patient == patient })
}

func (f *fakeBookingRepo) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) InsertIfAbsent(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.Treatment == booking.Treatment && b.Date == booking.Date && b.Patient == booking.Patient {
			existing := b
			return &existing, nil
		}
	}
	booking.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, *booking)
	return nil, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakeEnqueuer struct {
	mu       sync.Mutex
	payloads []models.ConfirmationPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueConfirmation(ctx context.Context, p models.ConfirmationPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, p)
	return nil
}

var errStoreDown = errors.New("server selection timeout")
