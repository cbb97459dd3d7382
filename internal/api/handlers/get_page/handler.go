package get_page

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	getPage "github.com/m04kA/SMC-ProfileService/internal/usecase/get_page"
)

const (
	msgInvalidPreview   = "некорректное значение preview, ожидается true или false"
	msgInvalidPageType  = "неизвестный тип страницы"
	msgBusinessNotFound = "бизнес не найден"
	msgPageNotFound     = "страница не найдена"
)

type Handler struct {
	useCase GetPageUseCase
	logger  Logger
}

func NewHandler(useCase GetPageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/pages/{pageType}?preview=bool
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID := vars["businessId"]
	pageType := vars["pageType"]

	preview := false
	if raw := r.URL.Query().Get("preview"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/pages/{type} - Invalid preview: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPreview)
			return
		}
		preview = parsed
	}

	result, err := h.useCase.Execute(r.Context(), getPage.Request{
		BusinessID: businessID,
		PageType:   pageType,
		Preview:    preview,
	})
	if err != nil {
		switch {
		case errors.Is(err, getPage.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/pages/{type} - Invalid page type: %s", pageType)
			handlers.RespondBadRequest(w, msgInvalidPageType)

		case errors.Is(err, getPage.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/pages/{type} - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getPage.ErrPageNotFound):
			h.logger.Warn("GET /businesses/{id}/pages/{type} - Page not found: business_id=%s, page=%s", businessID, pageType)
			handlers.RespondNotFound(w, msgPageNotFound)

		default:
			h.logger.Error("GET /businesses/{id}/pages/{type} - Failed to get page: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/pages/{type} - Page rendered: business_id=%s, page=%s, nodes=%d",
		businessID, pageType, len(result.View.Nodes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
