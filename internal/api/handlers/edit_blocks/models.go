package edit_blocks

import (
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	editBlocks "github.com/m04kA/SMC-ProfileService/internal/usecase/edit_blocks"
)

// AddBlockRequest тело POST .../blocks
type AddBlockRequest struct {
	Type string `json:"type"`
}

// MoveBlockRequest тело POST .../blocks/{blockId}/move
type MoveBlockRequest struct {
	Direction string `json:"direction"`
}

// ReorderBlocksRequest тело POST .../blocks/reorder.
// Указатели, чтобы отличить отсутствующее поле от нуля.
type ReorderBlocksRequest struct {
	FromIndex *int `json:"fromIndex"`
	ToIndex   *int `json:"toIndex"`
}

// UpdateSettingsRequest тело PUT .../settings
type UpdateSettingsRequest struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

// BlockTypesResponse типы блоков для меню "добавить блок"
type BlockTypesResponse struct {
	Types []domain.BlockType `json:"types"`
}

// PageResponse HTTP response model
type PageResponse struct {
	BusinessID string        `json:"businessId"`
	Page       domain.Page   `json:"page"`
	Block      *domain.Block `json:"block,omitempty"`
}

func FromUseCaseResponse(resp *editBlocks.Response) *PageResponse {
	return &PageResponse{
		BusinessID: resp.BusinessID,
		Page:       resp.Page,
		Block:      resp.Block,
	}
}
