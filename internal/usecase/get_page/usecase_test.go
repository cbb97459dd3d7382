package get_page

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	businessRepo "github.com/m04kA/SMC-ProfileService/internal/infra/storage/business"
	"github.com/m04kA/SMC-ProfileService/internal/service/pages"
	"github.com/m04kA/SMC-ProfileService/pkg/logger"
)

type fakeRepo struct {
	business *domain.Business
	err      error
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Business, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.business == nil || r.business.ID != id {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return r.business, nil
}

type fakeCatalog struct {
	products []domain.Product
	err      error
	calls    int
}

func (c *fakeCatalog) GetProducts(_ context.Context, _ string) ([]domain.Product, error) {
	c.calls++
	return c.products, c.err
}

func testBusiness() domain.Business {
	return domain.Business{
		ID:          "biz-1",
		Name:        "Sunny Salon",
		Slug:        "sunny-salon",
		Description: "Canonical about",
		Pages: []domain.Page{
			{
				Type:    domain.PageTypeStorefront,
				Slug:    "home",
				Enabled: true,
				Settings: domain.Settings{
					Blocks: []domain.Block{
						{ID: "about", Type: domain.BlockTypeAbout, Content: domain.AboutBlock{Summary: "Block about"}},
					},
				},
			},
		},
	}
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "s1", Name: "Haircut", Type: "service", Status: "online"},
		{ID: "p1", Name: "Shampoo", Type: "product", Status: "active"},
		{ID: "x1", Name: "Hidden", Type: "service", Status: "draft"},
	}
}

func setup() (*UseCase, *fakeRepo, *fakeCatalog) {
	business := testBusiness()
	repo := &fakeRepo{business: &business}
	catalog := &fakeCatalog{products: testProducts()}
	return NewUseCase(repo, catalog, logger.NewNop()), repo, catalog
}

func TestExecute_ProfileAliasesStorefront(t *testing.T) {
	uc, _, catalog := setup()

	resp, err := uc.Execute(context.Background(), Request{BusinessID: "biz-1", PageType: "Profile"})
	require.NoError(t, err)

	assert.Equal(t, domain.PageTypeStorefront, resp.Page.Type)
	assert.False(t, resp.Injected)
	require.Len(t, resp.View.Nodes, 1)
	assert.Equal(t, "Canonical about", resp.View.Nodes[0].About.Summary)
	assert.Equal(t, 0, catalog.calls)
}

func TestExecute_InjectsServicesOnBookings(t *testing.T) {
	uc, _, catalog := setup()

	resp, err := uc.Execute(context.Background(), Request{BusinessID: "biz-1", PageType: "bookings"})
	require.NoError(t, err)

	assert.True(t, resp.Injected)
	assert.Equal(t, domain.PageTypeBookings, resp.Page.Type)
	assert.Empty(t, resp.Page.Settings.Blocks)
	require.Len(t, resp.View.Nodes, 1)
	assert.Equal(t, pages.InjectedServicesBlockID, resp.View.Nodes[0].BlockID)
	require.NotNil(t, resp.View.Nodes[0].Catalog)
	require.Len(t, resp.View.Nodes[0].Catalog.Items, 1)
	assert.Equal(t, "s1", resp.View.Nodes[0].Catalog.Items[0].ID)
	assert.Equal(t, 1, catalog.calls)
}

func TestExecute_ShopListsAllListedItems(t *testing.T) {
	uc, _, _ := setup()

	resp, err := uc.Execute(context.Background(), Request{BusinessID: "biz-1", PageType: "shop"})
	require.NoError(t, err)

	require.Len(t, resp.View.Nodes, 1)
	assert.Len(t, resp.View.Nodes[0].Catalog.Items, 2)
}

func TestExecute_CatalogDegradation(t *testing.T) {
	uc, _, catalog := setup()
	catalog.err = errors.New("catalog down")

	resp, err := uc.Execute(context.Background(), Request{BusinessID: "biz-1", PageType: "shop"})
	require.NoError(t, err)

	assert.True(t, resp.CatalogDegraded)
	require.Len(t, resp.View.Nodes, 1)
	assert.Empty(t, resp.View.Nodes[0].Catalog.Items)
}

func TestExecute_WelcomeOnlyInPreview(t *testing.T) {
	uc, repo, _ := setup()
	repo.business.Pages = nil

	_, err := uc.Execute(context.Background(), Request{BusinessID: "biz-1", PageType: "storefront"})
	assert.ErrorIs(t, err, ErrPageNotFound)

	resp, err := uc.Execute(context.Background(), Request{BusinessID: "biz-1", PageType: "storefront", Preview: true})
	require.NoError(t, err)
	assert.True(t, resp.Injected)
	require.Len(t, resp.View.Nodes, 1)
	assert.Equal(t, "Welcome to Sunny Salon", resp.View.Nodes[0].Text.Title)
	assert.Nil(t, repo.business.Pages)
}

func TestExecute_Errors(t *testing.T) {
	uc, repo, _ := setup()
	ctx := context.Background()

	_, err := uc.Execute(ctx, Request{BusinessID: "biz-1", PageType: "blog"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, Request{BusinessID: "missing", PageType: "shop"})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	repo.err = errors.New("db down")
	_, err = uc.Execute(ctx, Request{BusinessID: "biz-1", PageType: "shop"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_DuplicatePageType(t *testing.T) {
	uc, repo, _ := setup()
	business := testBusiness()
	business.Pages = append(business.Pages, business.Pages[0].Clone())
	repo.business = &business

	_, err := uc.Execute(context.Background(), Request{BusinessID: "biz-1", PageType: "storefront"})

	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, pages.ErrDuplicatePageType)
}
