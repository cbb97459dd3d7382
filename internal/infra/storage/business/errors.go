package business

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business.repository: business not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("business.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("business.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("business.repository: failed to scan row")

	// ErrDecodeProfile возвращается, когда документ профиля не разбирается
	ErrDecodeProfile = errors.New("business.repository: failed to decode profile")

	// ErrEncodeProfile возвращается, когда профиль не сериализуется
	ErrEncodeProfile = errors.New("business.repository: failed to encode profile")
)
