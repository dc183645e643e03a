package ports

import (
	"context"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
)

// BookingNotifier delivers a human-readable booking alert. An error from
// Send means the alert was not delivered, nothing more: the booking flow
// decides whether that matters.
type BookingNotifier interface {
	Send(ctx context.Context, b *domain.Booking) error
}
