package booking

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

// ListServices returns every service with its full slot list.
func (s *DefaultBookingService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// ComputeAvailability returns every service with its slots narrowed to those
// not yet booked on date. It reads the live booking set on every call.
func (s *DefaultBookingService) ComputeAvailability(ctx context.Context, date string) ([]models.Service, error) {
	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	return AvailableSlots(services, bookings), nil
}

// AvailableSlots removes from each service the slots taken by bookings of the
// same treatment, keeping the original slot order. Bookings are assumed to be
// for a single date. Bookings naming an unknown treatment are ignored.
// The input services are not modified.
func AvailableSlots(services []models.Service, bookings []models.Booking) []models.Service {
	taken := make(map[string]map[string]struct{})
	for _, b := range bookings {
		slots, ok := taken[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			taken[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	available := make([]models.Service, 0, len(services))
	for _, svc := range services {
		booked := taken[svc.Name]
		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, isBooked := booked[slot]; !isBooked {
				open = append(open, slot)
			}
		}
		svc.Slots = open
		available = append(available, svc)
	}
	return available
}
