package location_from_coords

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/render"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgGeolocationUnavailable = "геолокация недоступна, укажите адрес вручную"
	msgInvalidCoordinates     = "некорректные координаты"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/location/from-coordinates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CoordinatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /location/from-coordinates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	mapsURL, err := render.LocationFromCoordinates(render.Coordinates{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, render.ErrGeolocationUnavailable):
			h.logger.Warn("POST /location/from-coordinates - Geolocation unavailable")
			handlers.RespondBadRequest(w, msgGeolocationUnavailable)
		default:
			h.logger.Warn("POST /location/from-coordinates - Invalid coordinates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)
		}
		return
	}

	h.logger.Info("POST /location/from-coordinates - Maps URL built")
	handlers.RespondJSON(w, http.StatusOK, LocationResponse{
		LocationType: string(domain.LocationTypeURL),
		URL:          mapsURL,
	})
}
