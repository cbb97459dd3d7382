package catalog

// errorResponse модель ошибки каталога
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
