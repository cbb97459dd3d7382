package get_page

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	businessRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/business"
	"github.com/m04kA/SMC-ProfileService/internal/service/pages"
	"github.com/m04kA/SMC-ProfileService/internal/service/render"
)

// UseCase use case чтения страницы для публичного профиля и предпросмотра в редакторе
type UseCase struct {
	businessRepo BusinessRepository
	catalog      CatalogClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(businessRepo BusinessRepository, catalog CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute находит страницу, подставляет блок по умолчанию и рендерит её
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	uc.logger.Info("GetPage: business=%s, page=%s, preview=%t", req.BusinessID, req.PageType, req.Preview)

	// 1. Разбираем тип страницы
	pageType, err := pages.PageTypeFromString(req.PageType)
	if err != nil {
		uc.logger.Warn("GetPage: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем профиль бизнеса
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetPage: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetPage: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if err := pages.ValidatePages(business.Pages); err != nil {
		uc.logger.Error("GetPage: invalid stored profile id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 3. Разрешаем страницу
	resolved := pages.ResolvePage(*business, pageType, pages.Options{Preview: req.Preview})
	if !resolved.Found && !resolved.Injected {
		uc.logger.Warn("GetPage: page %s not found for business id=%s", pageType, req.BusinessID)
		return nil, ErrPageNotFound
	}

	// 4. Каталог нужен только блокам товаров и услуг.
	// Недоступность каталога не ломает страницу.
	var items []domain.Product
	degraded := false
	if needsCatalog(resolved.Blocks) {
		items, err = uc.catalog.GetProducts(ctx, business.ID)
		if err != nil {
			uc.logger.Error("GetPage: catalog unavailable for business id=%s, rendering empty catalog: %v", business.ID, err)
			items = nil
			degraded = true
		}
	}

	// 5. Рендерим
	view := render.Render(*business, items, items, resolved.Blocks, pageType)

	page := resolved.Page
	if !resolved.Found {
		page = pages.NewPage(pageType)
	}

	return &Response{
		Page:            page,
		Injected:        resolved.Injected,
		CatalogDegraded: degraded,
		View:            view,
	}, nil
}

func needsCatalog(list []domain.Block) bool {
	for _, b := range list {
		if b.Type == domain.BlockTypeProducts || b.Type == domain.BlockTypeServices {
			return true
		}
	}
	return false
}
