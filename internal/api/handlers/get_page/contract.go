package get_page

import (
	"context"

	getPage "github.com/m04kA/SMC-ProfileService/internal/usecase/get_page"
)

type GetPageUseCase interface {
	Execute(ctx context.Context, req getPage.Request) (*getPage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
