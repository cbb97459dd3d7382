package edit_blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	businessRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/business"
	"github.com/m04kA/SMC-ProfileService/internal/service/blocks"
	"github.com/m04kA/SMC-ProfileService/internal/service/canonical"
	"github.com/m04kA/SMC-ProfileService/internal/service/pages"
)

// UseCase операции редактора блоков. Каждая операция выполняется в транзакции:
// профиль читается с блокировкой строки, меняется в памяти и записывается одним UPDATE.
type UseCase struct {
	businessRepo BusinessRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	businessRepo BusinessRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// editFunc меняет копию профиля; idx - индекс редактируемой страницы
type editFunc func(business domain.Business, idx int) (domain.Business, *domain.Block, error)

// AddBlock добавляет в конец страницы блок с содержимым по умолчанию
func (uc *UseCase) AddBlock(ctx context.Context, businessID string, pageType domain.PageType, blockType domain.BlockType) (*Response, error) {
	uc.logger.Info("EditBlocks.AddBlock: business=%s, page=%s, type=%s", businessID, pageType, blockType)

	if err := validateBlockType(blockType); err != nil {
		return nil, err
	}

	return uc.edit(ctx, OperationAdd, businessID, pageType, func(business domain.Business, idx int) (domain.Business, *domain.Block, error) {
		block, err := blocks.CreateDefaultBlock(blockType, business)
		if err != nil {
			return business, nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		list, err := blocks.AddBlock(business.Pages[idx].Settings.Blocks, block)
		if err != nil {
			return business, nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		business.Pages[idx].Settings.Blocks = list
		return business, &block, nil
	})
}

// UpdateBlock применяет patch к блоку и синхронизирует канонические поля профиля.
// Обе части записываются одним UPDATE: либо применяются вместе, либо не применяются.
func (uc *UseCase) UpdateBlock(ctx context.Context, businessID string, pageType domain.PageType, blockID string, patch domain.Patch) (*Response, error) {
	uc.logger.Info("EditBlocks.UpdateBlock: business=%s, page=%s, block=%s, keys=%v", businessID, pageType, blockID, patch.Keys())

	return uc.edit(ctx, OperationUpdate, businessID, pageType, func(business domain.Business, idx int) (domain.Business, *domain.Block, error) {
		current := business.Pages[idx].Settings.Blocks
		pos := blocks.FindBlock(current, blockID)
		if pos < 0 {
			return business, nil, fmt.Errorf("%w: id=%s", ErrBlockNotFound, blockID)
		}

		list, err := blocks.UpdateBlock(current, blockID, patch)
		if err != nil {
			return business, nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		updated := list[pos]

		synced := canonical.SyncCanonicalFields(business, updated, patch)
		synced.Pages[idx].Settings.Blocks = list
		return synced, &updated, nil
	})
}

// RemoveBlock удаляет блок со страницы. Отсутствующий блок - не ошибка.
func (uc *UseCase) RemoveBlock(ctx context.Context, businessID string, pageType domain.PageType, blockID string) (*Response, error) {
	uc.logger.Info("EditBlocks.RemoveBlock: business=%s, page=%s, block=%s", businessID, pageType, blockID)

	return uc.edit(ctx, OperationRemove, businessID, pageType, func(business domain.Business, idx int) (domain.Business, *domain.Block, error) {
		business.Pages[idx].Settings.Blocks = blocks.RemoveBlock(business.Pages[idx].Settings.Blocks, blockID)
		return business, nil, nil
	})
}

// MoveBlock сдвигает блок на одну позицию вверх или вниз
func (uc *UseCase) MoveBlock(ctx context.Context, businessID string, pageType domain.PageType, blockID string, direction blocks.Direction) (*Response, error) {
	uc.logger.Info("EditBlocks.MoveBlock: business=%s, page=%s, block=%s, direction=%s", businessID, pageType, blockID, direction)

	if err := validateDirection(direction); err != nil {
		return nil, err
	}

	return uc.edit(ctx, OperationMove, businessID, pageType, func(business domain.Business, idx int) (domain.Business, *domain.Block, error) {
		current := business.Pages[idx].Settings.Blocks
		pos := blocks.FindBlock(current, blockID)
		if pos < 0 {
			return business, nil, fmt.Errorf("%w: id=%s", ErrBlockNotFound, blockID)
		}

		business.Pages[idx].Settings.Blocks = blocks.MoveBlock(current, pos, direction)
		return business, nil, nil
	})
}

// ReorderBlocks переносит блок с позиции from на позицию to
func (uc *UseCase) ReorderBlocks(ctx context.Context, businessID string, pageType domain.PageType, from, to int) (*Response, error) {
	uc.logger.Info("EditBlocks.ReorderBlocks: business=%s, page=%s, from=%d, to=%d", businessID, pageType, from, to)

	return uc.edit(ctx, OperationReorder, businessID, pageType, func(business domain.Business, idx int) (domain.Business, *domain.Block, error) {
		business.Pages[idx].Settings.Blocks = blocks.Reorder(business.Pages[idx].Settings.Blocks, from, to)
		return business, nil, nil
	})
}

// UpdateSettings меняет SEO-поля страницы, не трогая блоки и неизвестные ключи настроек
func (uc *UseCase) UpdateSettings(ctx context.Context, businessID string, pageType domain.PageType, headline, description string) (*Response, error) {
	uc.logger.Info("EditBlocks.UpdateSettings: business=%s, page=%s", businessID, pageType)

	if err := validateSettings(headline, description); err != nil {
		return nil, err
	}

	return uc.edit(ctx, OperationUpdateSettings, businessID, pageType, func(business domain.Business, idx int) (domain.Business, *domain.Block, error) {
		business.Pages[idx].Settings.Headline = headline
		business.Pages[idx].Settings.Description = description
		return business, nil, nil
	})
}

// edit общий каркас операций: транзакция, блокировка профиля, изменение, запись
func (uc *UseCase) edit(ctx context.Context, operation, businessID string, pageType domain.PageType, fn editFunc) (*Response, error) {
	if err := validatePageType(pageType); err != nil {
		uc.logger.Warn("EditBlocks.%s: %v", operation, err)
		return nil, err
	}

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Читаем профиль с блокировкой строки
		stored, err := uc.businessRepo.GetByIDForUpdate(txCtx, businessID)
		if err != nil {
			if errors.Is(err, businessRepo.ErrBusinessNotFound) {
				return fmt.Errorf("%w: id=%s", ErrBusinessNotFound, businessID)
			}
			return fmt.Errorf("%w: failed to get business: %v", ErrRemoteFailure, err)
		}

		// 2. Находим или создаём страницу
		business, idx, err := pages.EnsurePage(*stored, pageType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		// 3. Применяем операцию к копии
		business, block, err := fn(business, idx)
		if err != nil {
			return err
		}

		// 4. Проверяем страницы перед записью
		if err := pages.ValidatePages(business.Pages); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}

		// 5. Сохраняем профиль целиком
		if err := uc.businessRepo.Update(txCtx, &business); err != nil {
			if errors.Is(err, businessRepo.ErrBusinessNotFound) {
				return fmt.Errorf("%w: id=%s", ErrBusinessNotFound, businessID)
			}
			return fmt.Errorf("%w: failed to update business: %v", ErrRemoteFailure, err)
		}

		resp = &Response{
			BusinessID: businessID,
			Page:       business.Pages[idx].Clone(),
			Block:      block,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBusinessNotFound), errors.Is(err, ErrBlockNotFound), errors.Is(err, ErrValidation):
			uc.logger.Warn("EditBlocks.%s: business=%s: %v", operation, businessID, err)
			return nil, err
		case errors.Is(err, ErrRemoteFailure), errors.Is(err, ErrInvalidProfile):
			uc.logger.Error("EditBlocks.%s: business=%s: %v", operation, businessID, err)
			return nil, err
		default:
			uc.logger.Error("EditBlocks.%s: business=%s: transaction failed: %v", operation, businessID, err)
			return nil, fmt.Errorf("%w: %v", ErrRemoteFailure, err)
		}
	}

	uc.metrics.IncBlockEdit(operation, string(pageType))
	uc.logger.Info("EditBlocks.%s: business=%s, page=%s, blocks=%d", operation, businessID, pageType, len(resp.Page.Settings.Blocks))

	return resp, nil
}
