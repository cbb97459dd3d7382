package edit_blocks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProfileService/internal/api/handlers"
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/blocks"
	"github.com/m04kA/SMC-ProfileService/internal/service/pages"
	editBlocks "github.com/m04kA/SMC-ProfileService/internal/usecase/edit_blocks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPageType    = "неизвестный тип страницы"
	msgMissingBlockType   = "не указан тип блока"
	msgMissingIndexes     = "необходимо указать fromIndex и toIndex"
	msgInvalidData        = "некорректные данные блока"
	msgBusinessNotFound   = "бизнес не найден"
	msgBlockNotFound      = "блок не найден"
	msgSaveFailed         = "не удалось сохранить изменения, попробуйте ещё раз"
	msgInvalidProfile     = "профиль содержит несколько страниц одного типа"
)

// Handler обработчики редактора блоков страницы (требуют X-User-ID)
type Handler struct {
	useCase EditBlocksUseCase
	logger  Logger
}

func NewHandler(useCase EditBlocksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// AddBlock POST /api/v1/businesses/{businessId}/pages/{pageType}/blocks
func (h *Handler) AddBlock(w http.ResponseWriter, r *http.Request) {
	const route = "POST /businesses/{id}/pages/{type}/blocks"

	businessID, pageType, ok := h.pathParams(w, r, route)
	if !ok {
		return
	}

	var req AddBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Type == "" {
		handlers.RespondBadRequest(w, msgMissingBlockType)
		return
	}

	result, err := h.useCase.AddBlock(r.Context(), businessID, pageType, domain.BlockType(req.Type))
	if err != nil {
		h.respondError(w, route, businessID, err)
		return
	}

	h.logger.Info("%s - Block added: business_id=%s, block_id=%s", route, businessID, result.Block.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// UpdateBlock PATCH /api/v1/businesses/{businessId}/pages/{pageType}/blocks/{blockId}
func (h *Handler) UpdateBlock(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /businesses/{id}/pages/{type}/blocks/{blockId}"

	businessID, pageType, ok := h.pathParams(w, r, route)
	if !ok {
		return
	}
	blockID := mux.Vars(r)["blockId"]

	var patch domain.Patch
	if err := handlers.DecodeJSON(r, &patch); err != nil || patch == nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.UpdateBlock(r.Context(), businessID, pageType, blockID, patch)
	if err != nil {
		h.respondError(w, route, businessID, err)
		return
	}

	h.logger.Info("%s - Block updated: business_id=%s, block_id=%s", route, businessID, blockID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// RemoveBlock DELETE /api/v1/businesses/{businessId}/pages/{pageType}/blocks/{blockId}
func (h *Handler) RemoveBlock(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /businesses/{id}/pages/{type}/blocks/{blockId}"

	businessID, pageType, ok := h.pathParams(w, r, route)
	if !ok {
		return
	}
	blockID := mux.Vars(r)["blockId"]

	result, err := h.useCase.RemoveBlock(r.Context(), businessID, pageType, blockID)
	if err != nil {
		h.respondError(w, route, businessID, err)
		return
	}

	h.logger.Info("%s - Block removed: business_id=%s, block_id=%s", route, businessID, blockID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// MoveBlock POST /api/v1/businesses/{businessId}/pages/{pageType}/blocks/{blockId}/move
func (h *Handler) MoveBlock(w http.ResponseWriter, r *http.Request) {
	const route = "POST /businesses/{id}/pages/{type}/blocks/{blockId}/move"

	businessID, pageType, ok := h.pathParams(w, r, route)
	if !ok {
		return
	}
	blockID := mux.Vars(r)["blockId"]

	var req MoveBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.MoveBlock(r.Context(), businessID, pageType, blockID, blocks.Direction(req.Direction))
	if err != nil {
		h.respondError(w, route, businessID, err)
		return
	}

	h.logger.Info("%s - Block moved %s: business_id=%s, block_id=%s", route, req.Direction, businessID, blockID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// ReorderBlocks POST /api/v1/businesses/{businessId}/pages/{pageType}/blocks/reorder
func (h *Handler) ReorderBlocks(w http.ResponseWriter, r *http.Request) {
	const route = "POST /businesses/{id}/pages/{type}/blocks/reorder"

	businessID, pageType, ok := h.pathParams(w, r, route)
	if !ok {
		return
	}

	var req ReorderBlocksRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.FromIndex == nil || req.ToIndex == nil {
		handlers.RespondBadRequest(w, msgMissingIndexes)
		return
	}

	result, err := h.useCase.ReorderBlocks(r.Context(), businessID, pageType, *req.FromIndex, *req.ToIndex)
	if err != nil {
		h.respondError(w, route, businessID, err)
		return
	}

	h.logger.Info("%s - Blocks reordered %d -> %d: business_id=%s", route, *req.FromIndex, *req.ToIndex, businessID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// UpdateSettings PUT /api/v1/businesses/{businessId}/pages/{pageType}/settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /businesses/{id}/pages/{type}/settings"

	businessID, pageType, ok := h.pathParams(w, r, route)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.UpdateSettings(r.Context(), businessID, pageType, req.Headline, req.Description)
	if err != nil {
		h.respondError(w, route, businessID, err)
		return
	}

	h.logger.Info("%s - Settings updated: business_id=%s", route, businessID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// BlockTypes GET /api/v1/block-types
func (h *Handler) BlockTypes(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, BlockTypesResponse{Types: blocks.SupportedTypes()})
}

func (h *Handler) pathParams(w http.ResponseWriter, r *http.Request, route string) (string, domain.PageType, bool) {
	vars := mux.Vars(r)
	pageType, err := pages.PageTypeFromString(vars["pageType"])
	if err != nil {
		h.logger.Warn("%s - Invalid page type: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidPageType)
		return "", "", false
	}
	return vars["businessId"], pageType, true
}

func (h *Handler) respondError(w http.ResponseWriter, route, businessID string, err error) {
	switch {
	case errors.Is(err, editBlocks.ErrValidation):
		h.logger.Warn("%s - Validation failed: business_id=%s, error=%v", route, businessID, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, editBlocks.ErrBusinessNotFound):
		h.logger.Warn("%s - Business not found: business_id=%s", route, businessID)
		handlers.RespondNotFound(w, msgBusinessNotFound)

	case errors.Is(err, editBlocks.ErrBlockNotFound):
		h.logger.Warn("%s - Block not found: business_id=%s", route, businessID)
		handlers.RespondNotFound(w, msgBlockNotFound)

	case errors.Is(err, editBlocks.ErrInvalidProfile):
		h.logger.Error("%s - Invalid stored profile: business_id=%s, error=%v", route, businessID, err)
		handlers.RespondConflict(w, msgInvalidProfile)

	case errors.Is(err, editBlocks.ErrRemoteFailure):
		h.logger.Error("%s - Save failed: business_id=%s, error=%v", route, businessID, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgSaveFailed)

	default:
		h.logger.Error("%s - Unexpected error: business_id=%s, error=%v", route, businessID, err)
		handlers.RespondInternalError(w)
	}
}
