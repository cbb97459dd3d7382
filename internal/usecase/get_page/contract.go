package get_page

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// BusinessRepository интерфейс чтения профиля бизнеса
type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}

// CatalogClient интерфейс клиента каталога товаров и услуг
type CatalogClient interface {
	GetProducts(ctx context.Context, businessID string) ([]domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
