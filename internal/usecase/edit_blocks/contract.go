package edit_blocks

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// BusinessRepository интерфейс репозитория профилей бизнеса
type BusinessRepository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Metrics interface {
	IncBlockEdit(operation, pageType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
