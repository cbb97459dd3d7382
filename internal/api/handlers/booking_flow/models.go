package booking_flow

import (
	bookingFlow "github.com/m04kA/SMC-ProfileService/internal/usecase/booking_flow"
)

// CustomerDetailsRequest данные клиента на шаге details
type CustomerDetailsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// EventRequest тело POST /booking-flows/{flowId}/events
type EventRequest struct {
	Event     string                  `json:"event"`
	ServiceID string                  `json:"serviceId,omitempty"`
	Date      string                  `json:"date,omitempty"`
	Slot      string                  `json:"slot,omitempty"`
	Details   *CustomerDetailsRequest `json:"details,omitempty"`
	Use24h    *bool                   `json:"use24h,omitempty"`
}

// EventErrorResponse ошибка перехода вместе с текущим состоянием сценария
type EventErrorResponse struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	State   *bookingFlow.Response `json:"state,omitempty"`
}

// ToUseCaseEvent конвертирует HTTP запрос в событие сценария
func (r *EventRequest) ToUseCaseEvent() bookingFlow.Event {
	event := bookingFlow.Event{
		Type:      bookingFlow.EventType(r.Event),
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Slot:      r.Slot,
		Use24h:    r.Use24h,
	}
	if r.Details != nil {
		event.Details = &bookingFlow.CustomerDetails{
			Name:  r.Details.Name,
			Email: r.Details.Email,
			Phone: r.Details.Phone,
			Notes: r.Details.Notes,
		}
	}
	return event
}
