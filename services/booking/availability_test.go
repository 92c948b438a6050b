package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"doctorsportal/models"
)

func cleaningService() models.Service {
	return models.Service{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}}
}

func TestAvailableSlots(t *testing.T) {
	tests := []struct {
		name     string
		services []models.Service
		bookings []models.Booking
		want     map[string][]string
	}{
		{
			name:     "no bookings keeps every slot in order",
			services: []models.Service{cleaningService(), {Name: "Filling", Slots: []string{"1pm", "2pm"}}},
			want:     map[string][]string{"Cleaning": {"9am", "10am", "11am"}, "Filling": {"1pm", "2pm"}},
		},
		{
			name:     "booked slot is removed",
			services: []models.Service{cleaningService()},
			bookings: []models.Booking{{Treatment: "Cleaning", Date: "2023-01-01", Slot: "10am", Patient: "a@x.com"}},
			want:     map[string][]string{"Cleaning": {"9am", "11am"}},
		},
		{
			name:     "bookings only narrow their own treatment",
			services: []models.Service{cleaningService(), {Name: "Filling", Slots: []string{"10am", "11am"}}},
			bookings: []models.Booking{{Treatment: "Filling", Slot: "10am"}},
			want:     map[string][]string{"Cleaning": {"9am", "10am", "11am"}, "Filling": {"11am"}},
		},
		{
			name:     "unknown treatment is ignored",
			services: []models.Service{cleaningService()},
			bookings: []models.Booking{{Treatment: "Whitening", Slot: "9am"}},
			want:     map[string][]string{"Cleaning": {"9am", "10am", "11am"}},
		},
		{
			name:     "every slot booked",
			services: []models.Service{cleaningService()},
			bookings: []models.Booking{
				{Treatment: "Cleaning", Slot: "9am"},
				{Treatment: "Cleaning", Slot: "10am"},
				{Treatment: "Cleaning", Slot: "11am"},
			},
			want: map[string][]string{"Cleaning": {}},
		},
		{
			name:     "slot missing from the service list changes nothing",
			services: []models.Service{cleaningService()},
			bookings: []models.Booking{{Treatment: "Cleaning", Slot: "5pm"}},
			want:     map[string][]string{"Cleaning": {"9am", "10am", "11am"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(tt.services, tt.bookings)
			if len(got) != len(tt.services) {
				t.Fatalf("expected %d services, got %d", len(tt.services), len(got))
			}
			for i, svc := range got {
				if svc.Name != tt.services[i].Name {
					t.Errorf("service %d: expected %q, got %q", i, tt.services[i].Name, svc.Name)
				}
				if !reflect.DeepEqual(svc.Slots, tt.want[svc.Name]) {
					t.Errorf("%s: expected slots %v, got %v", svc.Name, tt.want[svc.Name], svc.Slots)
				}
			}
		})
	}
}

func TestAvailableSlots_DoesNotMutateInput(t *testing.T) {
	services := []models.Service{cleaningService()}
	AvailableSlots(services, []models.Booking{{Treatment: "Cleaning", Slot: "9am"}})

	if !reflect.DeepEqual(services[0].Slots, []string{"9am", "10am", "11am"}) {
		t.Errorf("input slots were modified: %v", services[0].Slots)
	}
}

func TestComputeAvailability(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{Treatment: "Cleaning", Date: "2023-01-01", Slot: "10am", Patient: "a@x.com"},
		{Treatment: "Cleaning", Date: "2023-01-02", Slot: "9am", Patient: "b@x.com"},
	}}
	svc := &DefaultBookingService{
		Services: &fakeServiceRepo{services: []models.Service{cleaningService()}},
		Bookings: bookings,
	}
	ctx := context.Background()

	got, err := svc.ComputeAvailability(ctx, "2023-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.Service{{Name: "Cleaning", Slots: []string{"9am", "11am"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	again, err := svc.ComputeAvailability(ctx, "2023-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Errorf("expected identical results, got %+v then %+v", got, again)
	}

	empty, err := svc.ComputeAvailability(ctx, "2023-03-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(empty[0].Slots, []string{"9am", "10am", "11am"}) {
		t.Errorf("expected full slot list for empty day, got %v", empty[0].Slots)
	}
}

func TestComputeAvailability_ReflectsNewBookings(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := &DefaultBookingService{
		Services: &fakeServiceRepo{services: []models.Service{cleaningService()}},
		Bookings: bookings,
	}
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, &models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Slot: "11am", Patient: "a@x.com"}); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	got, err := svc.ComputeAvailability(ctx, "2023-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got[0].Slots, []string{"9am", "10am"}) {
		t.Errorf("expected 11am to be taken, got %v", got[0].Slots)
	}
}

func TestComputeAvailability_StoreErrors(t *testing.T) {
	ctx := context.Background()

	svc := &DefaultBookingService{
		Services: &fakeServiceRepo{err: errStoreDown},
		Bookings: &fakeBookingRepo{},
	}
	if _, err := svc.ComputeAvailability(ctx, "2023-01-01"); !errors.Is(err, errStoreDown) {
		t.Errorf("expected services error to propagate, got %v", err)
	}

	svc = &DefaultBookingService{
		Services: &fakeServiceRepo{services: []models.Service{cleaningService()}},
		Bookings: &fakeBookingRepo{err: errStoreDown},
	}
	if _, err := svc.ComputeAvailability(ctx, "2023-01-01"); !errors.Is(err, errStoreDown) {
		t.Errorf("expected bookings error to propagate, got %v", err)
	}
}
