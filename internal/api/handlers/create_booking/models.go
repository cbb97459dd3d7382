package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
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
}

// ToDomain конвертирует HTTP запрос в domain модель (с парсингом даты и времени)
func (r *CreateBookingRequest) ToDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		BusinessID:    r.BusinessID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		TotalPrice:    r.TotalPrice,
		Currency:      r.Currency,
		Notes:         r.Notes,
	}, nil
}
