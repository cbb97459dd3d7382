package render

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrGeolocationUnavailable координаты не получены (нет поддержки или доступа)
	ErrGeolocationUnavailable = errors.New("render: geolocation unavailable")

	// ErrInvalidCoordinates координаты вне допустимого диапазона
	ErrInvalidCoordinates = errors.New("render: invalid coordinates")
)

const googleMapsQueryURL = "https://www.google.com/maps?q="

// Coordinates точка, полученная от геолокации клиента
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// LocationFromCoordinates строит ссылку на карту для блока location
func LocationFromCoordinates(coords Coordinates) (string, error) {
	if coords.Latitude == nil || coords.Longitude == nil {
		return "", ErrGeolocationUnavailable
	}

	lat, lng := *coords.Latitude, *coords.Longitude
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", fmt.Errorf("%w: %v,%v", ErrInvalidCoordinates, lat, lng)
	}

	return googleMapsQueryURL +
		strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lng, 'f', -1, 64), nil
}
