package get_page

import (
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/render"
)

// Request параметры чтения страницы
type Request struct {
	BusinessID string
	PageType   string
	Preview    bool
}

// Response отрендеренная страница
type Response struct {
	Page     domain.Page
	Injected bool
	// CatalogDegraded - каталог был недоступен, блоки товаров и услуг показаны пустыми
	CatalogDegraded bool
	View            render.ViewTree
}
