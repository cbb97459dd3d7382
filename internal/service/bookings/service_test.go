package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

type fakeRepo struct {
	created *domain.Booking
	stored  map[string]*domain.Booking
	err     error
}

func (r *fakeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := *booking
	out.ID = "b-1"
	r.created = &out
	return &out, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := r.stored[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type countingMetrics struct{ created int }

func (m *countingMetrics) IncBookingCreated() { m.created++ }

func validBooking() *domain.Booking {
	return &domain.Booking{
		BusinessID:    "biz-1",
		ServiceID:     "cut",
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
		Date:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "14:00",
		EndTime:       "14:45",
		TotalPrice:    30,
		Currency:      "USD",
		Status:        domain.StatusPending,
	}
}

func TestService_CreateBooking(t *testing.T) {
	repo := &fakeRepo{}
	m := &countingMetrics{}
	s := NewService(repo, m, logger.NewNop())

	input := validBooking()
	created, err := s.CreateBooking(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "b-1", created.ID)
	assert.Equal(t, domain.StatusConfirmed, created.Status)
	assert.Equal(t, domain.StatusPending, input.Status, "input is not modified")
	assert.Equal(t, 1, m.created)
}

func TestService_CreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(b *domain.Booking)
	}{
		{name: "no business", modify: func(b *domain.Booking) { b.BusinessID = "" }},
		{name: "no service", modify: func(b *domain.Booking) { b.ServiceID = " " }},
		{name: "no name", modify: func(b *domain.Booking) { b.CustomerName = "" }},
		{name: "no email", modify: func(b *domain.Booking) { b.CustomerEmail = "" }},
		{name: "no date", modify: func(b *domain.Booking) { b.Date = time.Time{} }},
		{name: "bad start", modify: func(b *domain.Booking) { b.StartTime = "25:00" }},
		{name: "bad end", modify: func(b *domain.Booking) { b.EndTime = "" }},
		{name: "negative price", modify: func(b *domain.Booking) { b.TotalPrice = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			s := NewService(repo, &countingMetrics{}, logger.NewNop())
			b := validBooking()
			tt.modify(b)

			_, err := s.CreateBooking(context.Background(), b)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestService_CreateBooking_RepositoryError(t *testing.T) {
	m := &countingMetrics{}
	s := NewService(&fakeRepo{err: errors.New("db down")}, m, logger.NewNop())

	_, err := s.CreateBooking(context.Background(), validBooking())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, m.created)
}

func TestService_GetByID(t *testing.T) {
	stored := validBooking()
	stored.ID = "b-1"
	s := NewService(&fakeRepo{stored: map[string]*domain.Booking{"b-1": stored}}, &countingMetrics{}, logger.NewNop())

	resp, err := s.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "2026-03-14", resp.Date)
	assert.Equal(t, "14:45", resp.EndTime)

	_, err = s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
