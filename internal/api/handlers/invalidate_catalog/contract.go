package invalidate_catalog

import "context"

// CatalogCache кэш каталога, из которого можно удалить запись бизнеса
type CatalogCache interface {
	Invalidate(ctx context.Context, businessID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
