package booking_flow

import (
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/pkg/types"
)

// GenerateSlots генерирует начала слотов с шагом step минут в интервале [start, end)
func GenerateSlots(start, end types.TimeString, step int) ([]types.TimeString, error) {
	if step <= 0 {
		return []types.TimeString{}, nil
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := start
	for current.IsBefore(end) {
		slots = append(slots, current)

		next, err := current.AddMinutes(step)
		if err != nil {
			// следующий слот начался бы после полуночи
			break
		}
		current = next
	}

	return slots, nil
}

// DaySlots сетка слотов сценария записи: 09:00..17:30 каждые 30 минут
func DaySlots() []types.TimeString {
	slots, err := GenerateSlots(domain.SlotDayStart, domain.SlotDayEnd, domain.SlotIntervalMinutes)
	if err != nil {
		return []types.TimeString{}
	}
	return slots
}

// FormatTime отображает слот в 24-часовом формате как есть либо в 12-часовом: "9:00 AM".
// Некорректное значение возвращается без изменений.
func FormatTime(slot types.TimeString, use24h bool) string {
	if use24h {
		return slot.String()
	}
	formatted, err := slot.Format12h()
	if err != nil {
		return slot.String()
	}
	return formatted
}
