package get_page

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда профиль бизнеса не найден
	ErrBusinessNotFound = errors.New("get_page: business not found")

	// ErrPageNotFound возвращается, когда страница не создана и подставить нечего
	ErrPageNotFound = errors.New("get_page: page not found")

	// ErrInvalidInput возвращается при неизвестном типе страницы
	ErrInvalidInput = errors.New("get_page: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_page: internal error")
)
