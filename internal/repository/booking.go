package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
)

// Persister mirrors the in-memory collection to durable storage after every
// mutation.
type Persister interface {
	Save(bookings []domain.Booking) error
}

// BookingRepository is the authoritative in-memory collection of bookings,
// held in insertion order. The mutex covers both the slice and the file
// rewrite, so interleaved mutations cannot lose a save.
type BookingRepository struct {
	mu        sync.Mutex
	persister Persister
	bookings  []domain.Booking
}

func NewBookingRepo(persister Persister, initial []domain.Booking) *BookingRepository {
	return &BookingRepository{
		persister: persister,
		bookings:  initial,
	}
}

func (r *BookingRepository) Append(_ context.Context, b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, b)
	if err := r.persister.Save(r.snapshot()); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}

	return nil
}

func (r *BookingRepository) List(_ context.Context) []domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

// RemoveByID removes the first booking with the given id and returns it, or
// domain.ErrBookingNotFound when no booking matches.
func (r *BookingRepository) RemoveByID(_ context.Context, id int64) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID != id {
			continue
		}

		removed := b
		r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
		if err := r.persister.Save(r.snapshot()); err != nil {
			return domain.Booking{}, fmt.Errorf("persist bookings: %w", err)
		}

		return removed, nil
	}

	return domain.Booking{}, domain.ErrBookingNotFound
}

// snapshot must be called with the mutex held.
func (r *BookingRepository) snapshot() []domain.Booking {
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}
