package edit_blocks

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда профиль бизнеса не найден
	ErrBusinessNotFound = errors.New("edit_blocks: business not found")

	// ErrBlockNotFound возвращается, когда на странице нет блока с указанным id
	ErrBlockNotFound = errors.New("edit_blocks: block not found")

	// ErrValidation возвращается при некорректных входных данных
	// (неизвестный тип страницы или блока, patch не подходит к блоку)
	ErrValidation = errors.New("edit_blocks: validation failed")

	// ErrInvalidProfile возвращается, когда сохранённый профиль нарушает
	// правило "одна страница на тип" и его нельзя редактировать
	ErrInvalidProfile = errors.New("edit_blocks: invalid stored profile")

	// ErrRemoteFailure возвращается, когда не удалось прочитать или сохранить профиль
	ErrRemoteFailure = errors.New("edit_blocks: remote failure")
)
