package location_from_coords

// CoordinatesRequest координаты из геолокации браузера
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// LocationResponse ссылка на карту для блока location в режиме url
type LocationResponse struct {
	LocationType string `json:"locationType"`
	URL          string `json:"url"`
}
