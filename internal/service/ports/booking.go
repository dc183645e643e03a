package ports

import (
	"context"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
)

type BookingRepo interface {
	Append(ctx context.Context, b domain.Booking) error
	List(ctx context.Context) []domain.Booking
	RemoveByID(ctx context.Context, id int64) (domain.Booking, error)
}
