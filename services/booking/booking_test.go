package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"doctorsportal/models"
)

func newTestBookingService() (*DefaultBookingService, *fakeBookingRepo, *fakeEnqueuer) {
	repo := &fakeBookingRepo{}
	queue := &fakeEnqueuer{}
	return &DefaultBookingService{
		Services:      &fakeServiceRepo{services: []models.Service{cleaningService()}},
		Bookings:      repo,
		Confirmations: queue,
	}, repo, queue
}

func TestCreateBooking_Success(t *testing.T) {
	svc, repo, queue := newTestBookingService()

	b := &models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "10am"}
	out, err := svc.CreateBooking(context.Background(), b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success || out.Result == nil || out.Booking != nil {
		t.Fatalf("expected success with result, got %+v", out)
	}
	if out.Result.InsertedID != b.ID.Hex() {
		t.Errorf("expected inserted id %s, got %s", b.ID.Hex(), out.Result.InsertedID)
	}
	if repo.count() != 1 {
		t.Errorf("expected one stored booking, got %d", repo.count())
	}
	if len(queue.payloads) != 1 || queue.payloads[0].BookingID != b.ID.Hex() {
		t.Errorf("expected one confirmation for the booking, got %+v", queue.payloads)
	}
}

func TestCreateBooking_DuplicateTriple(t *testing.T) {
	tests := []struct {
		name      string
		candidate models.Booking
		conflict  bool
	}{
		{"same slot", models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "10am"}, true},
		{"different slot", models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "11am"}, true},
		{"different patient", models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "b@x.com", Slot: "11am"}, false},
		{"different date", models.Booking{Treatment: "Cleaning", Date: "2023-01-02", Patient: "a@x.com", Slot: "10am"}, false},
		{"different treatment", models.Booking{Treatment: "Filling", Date: "2023-01-01", Patient: "a@x.com", Slot: "10am"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, queue := newTestBookingService()
			ctx := context.Background()

			first := &models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "10am"}
			if _, err := svc.CreateBooking(ctx, first); err != nil {
				t.Fatalf("seed booking failed: %v", err)
			}

			candidate := tt.candidate
			out, err := svc.CreateBooking(ctx, &candidate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.conflict {
				if out.Success {
					t.Fatal("expected duplicate to be rejected")
				}
				if out.Booking == nil || out.Booking.ID != first.ID || out.Booking.Slot != "10am" {
					t.Errorf("expected the existing booking back, got %+v", out.Booking)
				}
				if repo.count() != 1 {
					t.Errorf("expected no second record, got %d", repo.count())
				}
				if len(queue.payloads) != 1 {
					t.Errorf("expected no confirmation for a rejected booking, got %d", len(queue.payloads))
				}
				return
			}
			if !out.Success {
				t.Fatalf("expected success, got %+v", out)
			}
			if repo.count() != 2 {
				t.Errorf("expected two records, got %d", repo.count())
			}
		})
	}
}

func TestCreateBooking_ConcurrentDuplicates(t *testing.T) {
	svc, repo, _ := newTestBookingService()
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := svc.CreateBooking(ctx, &models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "9am"})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if out.Success {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly one successful booking, got %d", successes)
	}
	if repo.count() != 1 {
		t.Errorf("expected one stored booking, got %d", repo.count())
	}
}

func TestCreateBooking_EnqueueFailureDoesNotFailBooking(t *testing.T) {
	svc, repo, queue := newTestBookingService()
	queue.err = errors.New("redis: connection refused")

	out, err := svc.CreateBooking(context.Background(), &models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "9am"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success || repo.count() != 1 {
		t.Errorf("expected booking to be stored, got %+v", out)
	}
}

func TestCreateBooking_StoreError(t *testing.T) {
	svc, _, queue := newTestBookingService()
	svc.Bookings = &fakeBookingRepo{err: errStoreDown}

	_, err := svc.CreateBooking(context.Background(), &models.Booking{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "9am"})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(queue.payloads) != 0 {
		t.Error("expected no confirmation after a failed insert")
	}
}

func TestListByPatient(t *testing.T) {
	svc, _, _ := newTestBookingService()
	ctx := context.Background()
	for _, b := range []models.Booking{
		{Treatment: "Cleaning", Date: "2023-01-01", Patient: "a@x.com", Slot: "9am"},
		{Treatment: "Cleaning", Date: "2023-01-02", Patient: "a@x.com", Slot: "9am"},
		{Treatment: "Cleaning", Date: "2023-01-01", Patient: "b@x.com", Slot: "10am"},
	} {
		b := b
		if _, err := svc.CreateBooking(ctx, &b); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	got, err := svc.ListByPatient(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
	for _, b := range got {
		if b.Patient != "a@x.com" {
			t.Errorf("unexpected patient %q", b.Patient)
		}
	}
}
