package pages

import (
	"fmt"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// Options параметры разрешения страницы
type Options struct {
	// Preview - страница показывается владельцу в редакторе
	Preview bool
}

// Resolved результат разрешения страницы
type Resolved struct {
	PageType domain.PageType
	// Found - страница (или её storefront-псевдоним для profile) есть в профиле
	Found    bool
	Page     domain.Page
	Settings domain.Settings
	Blocks   []domain.Block
	// Injected - Blocks состоит из подставленного блока по умолчанию, который не сохраняется
	Injected bool
}

// ResolvePage находит настройки и блоки страницы. Только чтение: business не изменяется,
// результат не разделяет с ним слайсы.
func ResolvePage(business domain.Business, pageType domain.PageType, opts Options) Resolved {
	resolved := Resolved{
		PageType: pageType,
		Blocks:   []domain.Block{},
	}

	if idx := lookup(business, pageType); idx >= 0 {
		page := business.Pages[idx].Clone()
		resolved.Found = true
		resolved.Page = page
		resolved.Settings = page.Settings
		if page.Settings.Blocks != nil {
			resolved.Blocks = page.Settings.Blocks
		}
	}

	if len(resolved.Blocks) == 0 {
		if block, ok := injectedBlock(business, pageType, opts.Preview); ok {
			resolved.Blocks = []domain.Block{block}
			resolved.Injected = true
		}
	}

	return resolved
}

// EnsurePage возвращает копию профиля, в которой есть страница pageType, и её индекс.
// Отсутствующая страница создаётся с настройками по умолчанию; для profile
// переиспользуется существующая storefront.
func EnsurePage(business domain.Business, pageType domain.PageType) (domain.Business, int, error) {
	if !pageType.IsValid() {
		return business, -1, fmt.Errorf("%w: %q", ErrUnknownPageType, pageType)
	}

	out := business.Clone()
	if idx := lookup(out, pageType); idx >= 0 {
		if out.Pages[idx].Settings.Blocks == nil {
			out.Pages[idx].Settings.Blocks = []domain.Block{}
		}
		return out, idx, nil
	}

	out.Pages = append(out.Pages, NewPage(pageType))
	return out, len(out.Pages) - 1, nil
}

// ValidatePages проверяет, что у каждого типа не больше одной страницы
func ValidatePages(pages []domain.Page) error {
	seen := make(map[domain.PageType]bool, len(pages))
	for _, page := range pages {
		if !page.Type.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownPageType, page.Type)
		}
		if seen[page.Type] {
			return fmt.Errorf("%w: %q", ErrDuplicatePageType, page.Type)
		}
		seen[page.Type] = true
	}
	return nil
}

// lookup индекс страницы с учётом псевдонима profile -> storefront
func lookup(business domain.Business, pageType domain.PageType) int {
	idx := business.PageIndex(pageType)
	if idx < 0 && pageType == domain.PageTypeProfile {
		idx = business.PageIndex(domain.PageTypeStorefront)
	}
	return idx
}
