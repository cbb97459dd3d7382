package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/pkg/ptr"
)

func business() domain.Business {
	return domain.Business{
		Name:  "Green Cafe",
		Slug:  "green-cafe",
		Phone: domain.Phone{Code: "+1", Number: "5551234"},
		Email: "hello@green.cafe",
		URL:   "https://green.cafe",
		Address: domain.Address{
			Street:     "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    "US",
		},
		BusinessHours: []domain.DayHours{
			{Day: "Monday", IsOpen: true, OpenTime: "08:00", CloseTime: "20:00"},
			{Day: "Sunday", IsOpen: false, OpenTime: "09:00", CloseTime: "17:00"},
		},
		SelectedFacilities: []string{"wifi"},
		SameAs:             []string{"https://facebook.com/green", "", "https://green.cafe/blog"},
		Description:        "Canonical story",
		Pages: []domain.Page{
			{Type: domain.PageTypeShop, Slug: "store", Title: "Store"},
		},
	}
}

func single(t *testing.T, b domain.Business, block domain.Block) Node {
	t.Helper()
	tree := Render(b, nil, nil, []domain.Block{block}, domain.PageTypeProfile)
	require.Len(t, tree.Nodes, 1)
	return tree.Nodes[0]
}

func TestRender_HoursCanonicalPrecedence(t *testing.T) {
	b := business()
	block := domain.Block{ID: "h", Type: domain.BlockTypeOpeningHours, Content: domain.OpeningHoursBlock{
		Days: []domain.DayHours{{Day: "Monday", IsOpen: true, OpenTime: "10:00", CloseTime: "11:00"}},
	}}

	node := single(t, b, block)

	require.NotNil(t, node.Hours)
	require.Len(t, node.Hours.Days, 2)
	assert.Equal(t, "08:00", node.Hours.Days[0].OpenTime)
	assert.Equal(t, "08:00 - 20:00", node.Hours.Days[0].Label)
	assert.Equal(t, "Closed", node.Hours.Days[1].Label)
}

func TestRender_HoursFallsBackToBlock(t *testing.T) {
	b := business()
	b.BusinessHours = nil
	block := domain.Block{ID: "h", Type: domain.BlockTypeOpeningHours, Content: domain.OpeningHoursBlock{
		Days: []domain.DayHours{{Day: "Monday", IsOpen: true, OpenTime: "10:00", CloseTime: "11:00"}},
	}}

	node := single(t, b, block)
	require.Len(t, node.Hours.Days, 1)
	assert.Equal(t, "10:00", node.Hours.Days[0].OpenTime)
}

func TestRender_ContactCanonicalPrecedence(t *testing.T) {
	block := domain.Block{ID: "c", Type: domain.BlockTypeContactInfo, Content: domain.ContactInfoBlock{
		FullName: "Jane",
		Phone:    "000",
		AltPhone: "999",
		Email:    "stale@green.cafe",
		Website:  "https://stale.example",
	}}

	node := single(t, business(), block)

	assert.Equal(t, &ContactView{
		FullName: "Jane",
		Phone:    "+1 5551234",
		AltPhone: "999",
		Email:    "hello@green.cafe",
		Website:  "https://green.cafe",
	}, node.Contact)
}

func TestRender_LocationAndAboutAndFacilities(t *testing.T) {
	list := []domain.Block{
		{ID: "l", Type: domain.BlockTypeLocation, Content: domain.LocationBlock{LocationType: domain.LocationTypeManual, Street: "stale"}},
		{ID: "a", Type: domain.BlockTypeAbout, Content: domain.AboutBlock{Summary: "stale"}},
		{ID: "f", Type: domain.BlockTypeFacilities, Content: domain.FacilitiesBlock{SelectedFacilities: []string{"stale"}}},
	}

	tree := Render(business(), nil, nil, list, domain.PageTypeProfile)
	require.Len(t, tree.Nodes, 3)

	location := tree.Nodes[0].Location
	assert.Equal(t, "1 Main St", location.Address.Street)
	assert.Equal(t, []string{"1 Main St", "Springfield, IL, 62701", "US"}, location.Lines)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=1+Main+St%2C+Springfield%2C+IL%2C+62701%2C+US", location.MapsURL)

	assert.Equal(t, "Canonical story", tree.Nodes[1].About.Summary)
	assert.Equal(t, []string{"wifi"}, tree.Nodes[2].Facilities.Items)
}

func TestRender_LocationURLMode(t *testing.T) {
	b := business()
	b.Address = domain.Address{}
	block := domain.Block{ID: "l", Type: domain.BlockTypeLocation, Content: domain.LocationBlock{
		LocationType: domain.LocationTypeURL,
		URL:          "https://maps.example/green",
	}}

	node := single(t, b, block)
	assert.Equal(t, "https://maps.example/green", node.Location.MapsURL)
	assert.Empty(t, node.Location.Lines)
}

func TestRender_SocialDerivationIsSameForBothSources(t *testing.T) {
	block := domain.Block{ID: "s", Type: domain.BlockTypeSocialNetworks, Content: domain.SocialNetworksBlock{
		Platforms: []domain.SocialPlatform{
			{Name: "custom", URL: "https://facebook.com/green"},
			{Name: "x", URL: "https://green.cafe/blog"},
		},
	}}

	fromCanonical := single(t, business(), block).Social

	b := business()
	b.SameAs = nil
	fromBlock := single(t, b, block).Social

	want := []PlatformView{
		{Name: "facebook", Icon: "facebook", URL: "https://facebook.com/green"},
		{Name: "website", Icon: "globe", URL: "https://green.cafe/blog"},
	}
	assert.Equal(t, want, fromCanonical.Platforms)
	assert.Equal(t, want, fromBlock.Platforms)
}

func TestRender_CatalogFiltering(t *testing.T) {
	items := []domain.Product{
		{ID: "1", Name: "Haircut", Type: "Service", Status: "online", Duration: ptr.Ptr(45)},
		{ID: "2", Name: "Shampoo", Type: "product", Status: "ACTIVE"},
		{ID: "3", Name: "Old", Type: "service", Status: "archived"},
		{ID: "4", Name: "Draft", Type: "service"},
	}
	servicesBlock := domain.Block{ID: "sv", Type: domain.BlockTypeServices, Content: domain.ServicesBlock{Title: "Services"}}
	productsBlock := domain.Block{ID: "pr", Type: domain.BlockTypeProducts, Content: domain.ProductsBlock{Title: "Products"}}

	shop := Render(business(), items, items, []domain.Block{productsBlock}, domain.PageTypeShop)
	assert.Equal(t, []string{"1", "2"}, itemIDs(shop.Nodes[0].Catalog))

	bookings := Render(business(), items, items, []domain.Block{servicesBlock}, domain.PageTypeBookings)
	assert.Equal(t, []string{"1"}, itemIDs(bookings.Nodes[0].Catalog))
	assert.Equal(t, 45, *bookings.Nodes[0].Catalog.Items[0].Duration)
}

func TestRender_PageLink(t *testing.T) {
	list := []domain.Block{
		{ID: "p1", Type: domain.BlockTypePageLink, Content: domain.PageLinkBlock{PageType: domain.PageTypeShop}},
		{ID: "p2", Type: domain.BlockTypePageLink, Content: domain.PageLinkBlock{Label: "Book", PageType: domain.PageTypeBookings}},
	}

	tree := Render(business(), nil, nil, list, domain.PageTypeProfile)

	assert.Equal(t, "/green-cafe/store", tree.Nodes[0].Link.URL)
	assert.Equal(t, "Shop", tree.Nodes[0].Link.Label)
	assert.Equal(t, "/green-cafe/bookings", tree.Nodes[1].Link.URL)
	assert.Equal(t, "Book", tree.Nodes[1].Link.Label)
}

func TestRender_UnknownBlocksRenderNothing(t *testing.T) {
	list := []domain.Block{
		{ID: "t", Type: domain.BlockTypeText, Content: domain.TextBlock{Title: "Hi", Align: domain.TextAlignLeft}},
		{ID: "x", Type: "carousel", Content: domain.UnknownBlock{}},
		{ID: "n", Type: "broken"},
		{ID: "u", Type: domain.BlockTypeURL, Content: domain.URLBlock{Label: "Menu", URL: "https://green.cafe/menu"}},
	}

	tree := Render(business(), nil, nil, list, domain.PageTypeProfile)

	require.Len(t, tree.Nodes, 2)
	assert.Equal(t, "t", tree.Nodes[0].BlockID)
	assert.Equal(t, "Hi", tree.Nodes[0].Text.Title)
	assert.Equal(t, "https://green.cafe/menu", tree.Nodes[1].Link.URL)
}

func TestRender_DoesNotMutateBusiness(t *testing.T) {
	b := business()
	block := domain.Block{ID: "f", Type: domain.BlockTypeFacilities, Content: domain.FacilitiesBlock{}}

	node := single(t, b, block)
	node.Facilities.Items[0] = "pool"

	assert.Equal(t, "wifi", b.SelectedFacilities[0])
}

func TestLocationFromCoordinates(t *testing.T) {
	link, err := LocationFromCoordinates(Coordinates{Latitude: ptr.Ptr(51.5), Longitude: ptr.Ptr(-0.12)})
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/maps?q=51.5,-0.12", link)

	_, err = LocationFromCoordinates(Coordinates{Latitude: ptr.Ptr(51.5)})
	assert.ErrorIs(t, err, ErrGeolocationUnavailable)

	_, err = LocationFromCoordinates(Coordinates{Latitude: ptr.Ptr(91.0), Longitude: ptr.Ptr(0.0)})
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func itemIDs(view *CatalogView) []string {
	out := make([]string, 0, len(view.Items))
	for _, item := range view.Items {
		out = append(out, item.ID)
	}
	return out
}
