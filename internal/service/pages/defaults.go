package pages

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// Id блоков, подставляемых при пустом списке. Стабильны, чтобы клиент мог
// отличать их от сохранённых блоков.
const (
	InjectedProductsBlockID = "default-products"
	InjectedServicesBlockID = "default-services"
	InjectedQuoteBlockID    = "default-quote"
	InjectedWelcomeBlockID  = "default-welcome"
)

var defaultTitles = map[domain.PageType]string{
	domain.PageTypeProfile:    "Profile",
	domain.PageTypeStorefront: "Storefront",
	domain.PageTypeShop:       "Shop",
	domain.PageTypeBookings:   "Book an appointment",
	domain.PageTypeQuote:      "Request a quote",
}

// PageTypeFromString разбирает тип страницы из пути запроса
func PageTypeFromString(s string) (domain.PageType, error) {
	pageType := domain.PageType(strings.ToLower(strings.TrimSpace(s)))
	if !pageType.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPageType, s)
	}
	return pageType, nil
}

// DefaultTitle заголовок новой страницы
func DefaultTitle(pageType domain.PageType) string {
	return defaultTitles[pageType]
}

// DefaultSlug slug новой страницы
func DefaultSlug(pageType domain.PageType) string {
	return string(pageType)
}

// NewPage страница с настройками по умолчанию и пустым списком блоков
func NewPage(pageType domain.PageType) domain.Page {
	return domain.Page{
		Type:    pageType,
		Slug:    DefaultSlug(pageType),
		Title:   DefaultTitle(pageType),
		Enabled: true,
		Settings: domain.Settings{
			Blocks: []domain.Block{},
		},
	}
}

// injectedBlock блок-заглушка для пустой страницы; ok=false - подставлять нечего
func injectedBlock(business domain.Business, pageType domain.PageType, preview bool) (domain.Block, bool) {
	switch pageType {
	case domain.PageTypeShop:
		return domain.Block{
			ID:      InjectedProductsBlockID,
			Type:    domain.BlockTypeProducts,
			Content: domain.ProductsBlock{Title: "Products"},
		}, true

	case domain.PageTypeBookings:
		return domain.Block{
			ID:      InjectedServicesBlockID,
			Type:    domain.BlockTypeServices,
			Content: domain.ServicesBlock{Title: "Services"},
		}, true

	case domain.PageTypeQuote:
		return domain.Block{
			ID:   InjectedQuoteBlockID,
			Type: domain.BlockTypeText,
			Content: domain.TextBlock{
				Title:   "Request a quote",
				Content: "Tell us what you need and we will get back to you with a quote.",
				Align:   domain.TextAlignCenter,
			},
		}, true

	case domain.PageTypeProfile, domain.PageTypeStorefront:
		if !preview {
			return domain.Block{}, false
		}
		title := "Welcome"
		if business.Name != "" {
			title = "Welcome to " + business.Name
		}
		return domain.Block{
			ID:   InjectedWelcomeBlockID,
			Type: domain.BlockTypeText,
			Content: domain.TextBlock{
				Title:   title,
				Content: "Add blocks to start building your page.",
				Align:   domain.TextAlignCenter,
			},
		}, true
	}

	return domain.Block{}, false
}
