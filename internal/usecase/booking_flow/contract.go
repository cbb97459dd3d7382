package booking_flow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// BookingCreator внешний API создания бронирования
type BookingCreator interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// BusinessRepository интерфейс чтения профиля бизнеса
type BusinessRepository interface {
	GetByID(ctx context.Context, businessID string) (*domain.Business, error)
}

// CatalogClient интерфейс получения каталога товаров и услуг бизнеса
type CatalogClient interface {
	GetProducts(ctx context.Context, businessID string) ([]domain.Product, error)
}

// SessionStore хранилище сериализованных сценариев записи
type SessionStore interface {
	Load(ctx context.Context, flowID string) ([]byte, error)
	Store(ctx context.Context, flowID string, data []byte) error
	// AcquireSubmitLock возвращает false, если отправка по этому сценарию уже идёт
	AcquireSubmitLock(ctx context.Context, flowID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, flowID string) error
}

// Metrics счётчики сценария записи
type Metrics interface {
	IncBookingSubmissionFailed(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
