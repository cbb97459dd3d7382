package catalog

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// Source источник данных каталога, который кэшируется
type Source interface {
	GetProducts(ctx context.Context, businessID string) ([]domain.Product, error)
}

type Metrics interface {
	IncCatalogCache(result string)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
