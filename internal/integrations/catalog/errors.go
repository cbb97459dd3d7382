package catalog

import "errors"

var (
	// ErrRemoteFailure возвращается, когда каталог недоступен или ответил не 2xx
	ErrRemoteFailure = errors.New("catalog client: remote failure")

	// ErrInvalidResponse возвращается, когда тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("catalog client: invalid response")
)
