package edit_blocks

import (
	"context"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/blocks"
	editBlocks "github.com/m04kA/SMC-ProfileService/internal/usecase/edit_blocks"
)

type EditBlocksUseCase interface {
	AddBlock(ctx context.Context, businessID string, pageType domain.PageType, blockType domain.BlockType) (*editBlocks.Response, error)
	UpdateBlock(ctx context.Context, businessID string, pageType domain.PageType, blockID string, patch domain.Patch) (*editBlocks.Response, error)
	RemoveBlock(ctx context.Context, businessID string, pageType domain.PageType, blockID string) (*editBlocks.Response, error)
	MoveBlock(ctx context.Context, businessID string, pageType domain.PageType, blockID string, direction blocks.Direction) (*editBlocks.Response, error)
	ReorderBlocks(ctx context.Context, businessID string, pageType domain.PageType, from, to int) (*editBlocks.Response, error)
	UpdateSettings(ctx context.Context, businessID string, pageType domain.PageType, headline, description string) (*editBlocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
