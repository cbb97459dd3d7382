package booking_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	bookingFlow "github.com/m04kA/SMC-ProfileService/internal/usecase/booking_flow"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingEvent       = "не указано событие"
	msgBusinessNotFound   = "бизнес не найден"
	msgFlowNotFound       = "сценарий записи не найден или истёк"
	msgValidation         = "проверьте введённые данные"
	msgSlotRequired       = "выберите время"
	msgUnknownService     = "услуга недоступна для записи"
	msgInvalidTransition  = "действие недоступно на текущем шаге"
	msgInFlight           = "бронирование уже отправляется"
	msgRemoteFailure      = "не удалось создать бронирование, попробуйте ещё раз"
	msgCatalogUnavailable = "каталог услуг временно недоступен"
	msgNotConfirmed       = "бронирование ещё не подтверждено"
)

// Handler обработчики сценария записи (публичные)
type Handler struct {
	useCase BookingFlowUseCase
	logger  Logger
}

func NewHandler(useCase BookingFlowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Start POST /api/v1/businesses/{businessId}/booking-flows
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	result, err := h.useCase.Start(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, bookingFlow.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/booking-flows - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, bookingFlow.ErrRemoteFailure):
			h.logger.Error("POST /businesses/{id}/booking-flows - Catalog unavailable: business_id=%s, error=%v", businessID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /businesses/{id}/booking-flows - Failed to start flow: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/booking-flows - Flow started: business_id=%s, flow_id=%s", businessID, result.Flow.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/booking-flows/{flowId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	result, err := h.useCase.Get(r.Context(), flowID)
	if err != nil {
		if errors.Is(err, bookingFlow.ErrFlowNotFound) {
			h.logger.Warn("GET /booking-flows/{id} - Flow not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgFlowNotFound)
			return
		}
		h.logger.Error("GET /booking-flows/{id} - Failed to load flow: flow_id=%s, error=%v", flowID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Dispatch POST /api/v1/booking-flows/{flowId}/events
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-flows/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Event == "" {
		handlers.RespondBadRequest(w, msgMissingEvent)
		return
	}

	result, err := h.useCase.Dispatch(r.Context(), flowID, req.ToUseCaseEvent())
	if err != nil {
		status, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /booking-flows/{id}/events - flow_id=%s, event=%s, error=%v", flowID, req.Event, err)
		} else {
			h.logger.Warn("POST /booking-flows/{id}/events - flow_id=%s, event=%s rejected: %v", flowID, req.Event, err)
		}
		handlers.RespondJSON(w, status, EventErrorResponse{Code: status, Message: message, State: result})
		return
	}

	h.logger.Info("POST /booking-flows/{id}/events - flow_id=%s, event=%s, step=%s", flowID, req.Event, result.Flow.Step)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CalendarICS GET /api/v1/booking-flows/{flowId}/calendar.ics
func (h *Handler) CalendarICS(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	ics, err := h.useCase.CalendarICS(r.Context(), flowID)
	if err != nil {
		switch {
		case errors.Is(err, bookingFlow.ErrFlowNotFound):
			handlers.RespondNotFound(w, msgFlowNotFound)
		case errors.Is(err, bookingFlow.ErrNotConfirmed):
			handlers.RespondConflict(w, msgNotConfirmed)
		default:
			h.logger.Error("GET /booking-flows/{id}/calendar.ics - flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="booking.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ics))
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, bookingFlow.ErrFlowNotFound):
		return http.StatusNotFound, msgFlowNotFound
	case errors.Is(err, bookingFlow.ErrValidation):
		return http.StatusBadRequest, msgValidation
	case errors.Is(err, bookingFlow.ErrSlotRequired):
		return http.StatusBadRequest, msgSlotRequired
	case errors.Is(err, bookingFlow.ErrUnknownService):
		return http.StatusBadRequest, msgUnknownService
	case errors.Is(err, bookingFlow.ErrInvalidTransition):
		return http.StatusConflict, msgInvalidTransition
	case errors.Is(err, bookingFlow.ErrSubmissionInFlight):
		return http.StatusConflict, msgInFlight
	case errors.Is(err, bookingFlow.ErrRemoteFailure):
		return http.StatusBadGateway, msgRemoteFailure
	default:
		return http.StatusInternalServerError, "внутренняя ошибка сервера"
	}
}
