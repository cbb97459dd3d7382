package domain

import (
	"time"

	"github.com/m04kA/SMC-ProfileService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking бронирование, созданное по завершении сценария записи.
// После создания сервис его не изменяет: смена статуса - забота внешних систем.
type Booking struct {
	ID            string
	BusinessID    string
	ServiceID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	TotalPrice    float64
	Currency      string
	Notes         string
	Status        BookingStatus

	CreatedAt time.Time
}
