package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
	"github.com/SALI676/booking-dolphin-spa201/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	repo     ports.BookingRepo
	notifier ports.BookingNotifier
	ids      ports.IDGenerator
	logger   logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	notifier ports.BookingNotifier,
	ids ports.IDGenerator,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		notifier: notifier,
		ids:      ids,
		logger:   logger,
	}
}

// Create validates the input, alerts the staff channel and stores the
// booking. The alert is awaited but best effort: a delivery failure is
// logged and the booking is persisted anyway.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Service == "" || input.Duration == "" || input.Price == "" ||
		input.Name == "" || input.Phone == "" || input.Datetime == "" {
		return nil, domain.ErrMissingFields
	}

	booking := domain.Booking{
		ID:        s.ids.Next(),
		Service:   input.Service,
		Duration:  input.Duration,
		Price:     input.Price,
		Name:      input.Name,
		Phone:     input.Phone,
		Datetime:  input.Datetime,
		AromaOil:  input.AromaOil,
		Pressure:  input.Pressure,
		FocusArea: input.FocusArea,
		AvoidArea: input.AvoidArea,
		BookedOn:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.notifier.Send(ctx, &booking); err != nil {
		s.logger.Error("failed to send booking alert",
			logger.Int64("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	if err := s.repo.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("append booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.String("service", booking.Service),
	)

	return &booking, nil
}

func (s *BookingService) List(ctx context.Context) []domain.Booking {
	return s.repo.List(ctx)
}

// Cancel removes the booking with the given id. No notification is sent on
// cancellation.
func (s *BookingService) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	removed, err := s.repo.RemoveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.Int64("booking_id", id),
	)

	return &removed, nil
}
