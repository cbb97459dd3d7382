package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ProfileService/internal/service/bookings/models"
)

// Service сервис бронирований: принимает бронирования, созданные сценарием записи
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateBooking создает бронирование. После создания бронирование не изменяется
// этим сервисом, статус сразу confirmed.
func (s *Service) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.logger.Info("CreateBooking: business=%s, service=%s, date=%s, time=%s",
		booking.BusinessID, booking.ServiceID, booking.Date.Format(domain.DateFormat), booking.StartTime)

	// 1. Валидация входных данных
	if err := validateBooking(booking); err != nil {
		s.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем
	toCreate := *booking
	toCreate.Status = domain.StatusConfirmed

	created, err := s.bookingRepo.Create(ctx, &toCreate)
	if err != nil {
		s.logger.Error("CreateBooking: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBooking - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncBookingCreated()
	s.logger.Info("CreateBooking: booking id=%s created", created.ID)
	return created, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

func validateBooking(b *domain.Booking) error {
	switch {
	case b == nil:
		return fmt.Errorf("%w: booking is required", ErrInvalidInput)
	case strings.TrimSpace(b.BusinessID) == "":
		return fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	case strings.TrimSpace(b.ServiceID) == "":
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	case strings.TrimSpace(b.CustomerName) == "":
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	case strings.TrimSpace(b.CustomerEmail) == "":
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	case b.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	case b.TotalPrice < 0:
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	case utf8.RuneCountInString(b.Notes) > domain.MaxNotesLength:
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	return nil
}
