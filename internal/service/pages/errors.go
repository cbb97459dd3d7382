package pages

import "errors"

var (
	// ErrUnknownPageType тип страницы не входит в domain.AllPageTypes
	ErrUnknownPageType = errors.New("pages: unknown page type")

	// ErrDuplicatePageType в профиле больше одной страницы одного типа
	ErrDuplicatePageType = errors.New("pages: duplicate page type")
)
