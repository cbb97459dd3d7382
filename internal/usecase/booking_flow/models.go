package booking_flow

import (
	"time"

	"github.com/m04kA/SMC-ProfileService/pkg/types"
)

// Step шаг сценария записи
type Step string

const (
	StepSelection    Step = "selection"
	StepDateTime     Step = "datetime"
	StepDetails      Step = "details"
	StepConfirmation Step = "confirmation"
)

// ServiceOption услуга, доступная для записи (снимок каталога на момент старта)
type ServiceOption struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Duration int     `json:"duration"` // в минутах
}

// BusinessSnapshot данные бизнеса, нужные для бронирования и экспорта в календарь
type BusinessSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
	Currency string `json:"currency"`
}

// CustomerDetails данные клиента на шаге details
type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// Flow состояние сценария записи. Сериализуется в JSON целиком.
type Flow struct {
	ID                 string           `json:"id"`
	Business           BusinessSnapshot `json:"business"`
	Step               Step             `json:"step"`
	Services           []ServiceOption  `json:"services"`
	SelectedServiceIDs []string         `json:"selectedServiceIds"`
	Date               string           `json:"date"`
	Slot               types.TimeString `json:"slot"`
	Details            CustomerDetails  `json:"details"`
	Use24h             bool             `json:"use24h"`
	Submitting         bool             `json:"submitting"`
	LastError          string           `json:"lastError,omitempty"`
	BookingID          string           `json:"bookingId,omitempty"`
	ConfirmedAt        time.Time        `json:"confirmedAt"`
}

// EventType событие, переданное клиентом
type EventType string

const (
	EventToggleService EventType = "toggle_service"
	EventNext          EventType = "next"
	EventBack          EventType = "back"
	EventSelectDate    EventType = "select_date"
	EventSelectSlot    EventType = "select_slot"
	EventSetDetails    EventType = "set_details"
	EventSubmit        EventType = "submit"
	EventBookAnother   EventType = "book_another"
	EventReschedule    EventType = "reschedule"
	EventSetTimeFormat EventType = "set_time_format"
)

// Event событие сценария с параметрами
type Event struct {
	Type      EventType        `json:"event"`
	ServiceID string           `json:"serviceId,omitempty"`
	Date      string           `json:"date,omitempty"`
	Slot      string           `json:"slot,omitempty"`
	Details   *CustomerDetails `json:"details,omitempty"`
	Use24h    *bool            `json:"use24h,omitempty"`
}

// SlotOption слот для отображения
type SlotOption struct {
	Value    types.TimeString `json:"value"`
	Label    string           `json:"label"`
	Selected bool             `json:"selected"`
}

// CalendarLinks данные для экспорта подтверждённой записи
type CalendarLinks struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
	ICS     string `json:"ics"`
}

// Response состояние сценария вместе с производными значениями
type Response struct {
	Flow          *Flow          `json:"flow"`
	Slots         []SlotOption   `json:"slots"`
	TotalDuration int            `json:"totalDuration"`
	TotalPrice    float64        `json:"totalPrice"`
	EndTime       string         `json:"endTime,omitempty"`
	Calendar      *CalendarLinks `json:"calendar,omitempty"`
}
