package models

import (
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"_id"`
	BusinessID    string  `json:"businessId"`
	ServiceID     string  `json:"serviceId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`      // "2026-03-14"
	StartTime     string  `json:"startTime"` // "14:00"
	EndTime       string  `json:"endTime"`
	TotalPrice    float64 `json:"totalPrice"`
	Currency      string  `json:"currency"`
	Notes         string  `json:"notes"`
	Status        string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingEnvelope тело ответа API бронирований: {"booking": {...}}
type BookingEnvelope struct {
	Booking *BookingResponse `json:"booking"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		BusinessID:    b.BusinessID,
		ServiceID:     b.ServiceID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		TotalPrice:    b.TotalPrice,
		Currency:      b.Currency,
		Notes:         b.Notes,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}
