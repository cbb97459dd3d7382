package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Параметры сетки слотов сценария записи
const (
	SlotDayStart        = "09:00"
	SlotDayEnd          = "18:00" // не включительно: последний слот начинается в 17:30
	SlotIntervalMinutes = 30
)

// Default values
const (
	DefaultServiceDurationMinutes = 30
	DefaultCurrency               = "USD"
	DefaultTimezone               = "UTC"
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)
