// Package mocks provides testify doubles for the service ports.
package mocks

import (
	"context"
	"testing"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
	"github.com/stretchr/testify/mock"
)

type BookingRepo struct {
	mock.Mock
}

func NewBookingRepo(t *testing.T) *BookingRepo {
	t.Helper()
	m := &BookingRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BookingRepo) Append(ctx context.Context, b domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookingRepo) List(ctx context.Context) []domain.Booking {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Booking)
	}
	return nil
}

func (m *BookingRepo) RemoveByID(ctx context.Context, id int64) (domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Booking), args.Error(1)
}

type BookingNotifier struct {
	mock.Mock
}

func NewBookingNotifier(t *testing.T) *BookingNotifier {
	t.Helper()
	m := &BookingNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BookingNotifier) Send(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type IDGenerator struct {
	mock.Mock
}

func NewIDGenerator(t *testing.T) *IDGenerator {
	t.Helper()
	m := &IDGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *IDGenerator) Next() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}
