package invalidate_catalog

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgCacheUnavailable  = "кэш каталога недоступен, попробуйте позже"
)

// Handler сбрасывает кэш каталога после изменения товаров или услуг бизнеса
type Handler struct {
	cache  CatalogCache
	logger Logger
}

func NewHandler(cache CatalogCache, logger Logger) *Handler {
	return &Handler{
		cache:  cache,
		logger: logger,
	}
}

// Handle DELETE /api/v1/businesses/{businessId}/catalog-cache
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID := strings.TrimSpace(mux.Vars(r)["businessId"])
	if businessID == "" {
		h.logger.Warn("DELETE /businesses/{id}/catalog-cache - Empty business ID")
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	if err := h.cache.Invalidate(r.Context(), businessID); err != nil {
		h.logger.Error("DELETE /businesses/{id}/catalog-cache - Failed to invalidate: business_id=%s, error=%v", businessID, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgCacheUnavailable)
		return
	}

	h.logger.Info("DELETE /businesses/{id}/catalog-cache - Catalog cache invalidated: business_id=%s", businessID)
	w.WriteHeader(http.StatusNoContent)
}
