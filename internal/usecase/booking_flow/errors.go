package booking_flow

import "errors"

var (
	// ErrValidation данные клиента не прошли проверку, переход не выполнен
	ErrValidation = errors.New("validation error")

	// ErrSlotRequired переход к вводу данных без выбранного времени
	ErrSlotRequired = errors.New("time slot is required")

	// ErrInvalidTransition событие недопустимо на текущем шаге
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrUnknownService выбранной услуги нет среди доступных для записи
	ErrUnknownService = errors.New("unknown service")

	// ErrSubmissionInFlight бронирование по сценарию уже отправляется
	ErrSubmissionInFlight = errors.New("booking submission already in flight")

	// ErrRemoteFailure ошибка внешнего API; сценарий остаётся на шаге details
	ErrRemoteFailure = errors.New("remote failure")

	// ErrNotConfirmed экспорт в календарь доступен только после подтверждения
	ErrNotConfirmed = errors.New("booking is not confirmed")

	// ErrFlowNotFound сценарий не найден или истёк
	ErrFlowNotFound = errors.New("booking flow not found")

	// ErrBusinessNotFound бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
