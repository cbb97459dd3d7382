package get_page

import (
	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/render"
	getPage "github.com/m04kA/SMC-ProfileService/internal/usecase/get_page"
)

// PageResponse HTTP response model
type PageResponse struct {
	Page            domain.Page     `json:"page"`
	Injected        bool            `json:"injected"`
	CatalogDegraded bool            `json:"catalogDegraded"`
	View            render.ViewTree `json:"view"`
}

func FromUseCaseResponse(resp *getPage.Response) *PageResponse {
	return &PageResponse{
		Page:            resp.Page,
		Injected:        resp.Injected,
		CatalogDegraded: resp.CatalogDegraded,
		View:            resp.View,
	}
}
