// Package render строит дерево отображения страницы из блоков и профиля бизнеса.
// Рендеринг ничего не пишет в профиль: при расхождении показываются канонические поля.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/blocks"
	"github.com/m04kA/SMC-ProfileService/internal/service/pages"
)

const googleMapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// Render отображает блоки страницы. Блоки неизвестных типов пропускаются.
func Render(business domain.Business, products, services []domain.Product, list []domain.Block, pageType domain.PageType) ViewTree {
	tree := ViewTree{
		PageType:     pageType,
		BusinessName: business.Name,
		BusinessSlug: business.Slug,
		Theme:        business.Theme,
		Nodes:        make([]Node, 0, len(list)),
	}

	for _, block := range list {
		if node, ok := renderBlock(business, products, services, block, pageType); ok {
			tree.Nodes = append(tree.Nodes, node)
		}
	}

	return tree
}

func renderBlock(business domain.Business, products, services []domain.Product, block domain.Block, pageType domain.PageType) (Node, bool) {
	node := Node{BlockID: block.ID, Type: block.Type}

	switch c := block.Content.(type) {
	case domain.TextBlock:
		node.Text = &TextView{Title: c.Title, Content: c.Content, Align: c.Align}
	case domain.URLBlock:
		node.Link = &LinkView{Label: c.Label, Subtitle: c.Subtitle, URL: c.URL}
	case domain.PageLinkBlock:
		node.Link = renderPageLink(business, c)
	case domain.OpeningHoursBlock:
		node.Hours = renderHours(business, c)
	case domain.ContactInfoBlock:
		node.Contact = renderContact(business, c)
	case domain.LocationBlock:
		node.Location = renderLocation(business, c)
	case domain.FacilitiesBlock:
		node.Facilities = renderFacilities(business, c)
	case domain.AboutBlock:
		node.About = &AboutView{Summary: firstNonEmpty(business.Description, c.Summary)}
	case domain.SocialNetworksBlock:
		node.Social = renderSocial(business, c)
	case domain.ProductsBlock:
		node.Catalog = renderCatalog(c.Title, c.Description, products, pageType)
	case domain.ServicesBlock:
		node.Catalog = renderCatalog(c.Title, c.Description, services, pageType)
	case domain.UnknownBlock:
		return Node{}, false
	default:
		return Node{}, false
	}

	return node, true
}

func renderPageLink(business domain.Business, c domain.PageLinkBlock) *LinkView {
	slug := pages.DefaultSlug(c.PageType)
	resolved := pages.ResolvePage(business, c.PageType, pages.Options{})
	if resolved.Found && resolved.Page.Slug != "" {
		slug = resolved.Page.Slug
	}

	label := c.Label
	if label == "" {
		label = pages.DefaultTitle(c.PageType)
	}

	return &LinkView{
		Label:    label,
		Subtitle: c.Subtitle,
		URL:      "/" + business.Slug + "/" + slug,
		PageType: c.PageType,
	}
}

// renderHours: непустой канонический businessHours важнее дней блока
func renderHours(business domain.Business, c domain.OpeningHoursBlock) *HoursView {
	source := c.Days
	if len(business.BusinessHours) > 0 {
		source = business.BusinessHours
	}

	days := make([]DayView, 0, len(source))
	for _, d := range source {
		label := "Closed"
		if c.IsOpen247 {
			label = "Open 24 hours"
		} else if d.IsOpen {
			label = fmt.Sprintf("%s - %s", d.OpenTime, d.CloseTime)
		}
		days = append(days, DayView{
			Day:       d.Day,
			IsOpen:    d.IsOpen || c.IsOpen247,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			Label:     label,
		})
	}

	return &HoursView{IsOpen247: c.IsOpen247, Days: days}
}

func renderContact(business domain.Business, c domain.ContactInfoBlock) *ContactView {
	return &ContactView{
		FullName: firstNonEmpty(c.FullName, business.Name),
		Phone:    firstNonEmpty(formatPhone(business.Phone), c.Phone),
		AltPhone: c.AltPhone,
		Email:    firstNonEmpty(business.Email, c.Email),
		Website:  firstNonEmpty(business.URL, c.Website),
	}
}

func renderLocation(business domain.Business, c domain.LocationBlock) *LocationView {
	address := domain.Address{
		Street:     c.Street,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Country:    c.Country,
	}
	if !business.Address.IsEmpty() {
		address = business.Address
	}

	view := &LocationView{
		LocationType: c.LocationType,
		Address:      address,
		Lines:        AddressLines(address),
	}

	if c.LocationType == domain.LocationTypeURL && c.URL != "" {
		view.MapsURL = c.URL
	} else {
		view.MapsURL = MapsURL(address)
	}

	return view
}

func renderFacilities(business domain.Business, c domain.FacilitiesBlock) *FacilitiesView {
	source := c.SelectedFacilities
	if len(business.SelectedFacilities) > 0 {
		source = business.SelectedFacilities
	}
	items := make([]string, len(source))
	copy(items, source)
	return &FacilitiesView{Items: items}
}

// renderSocial: имя и иконка выводятся одинаково для sameAs и для platforms блока
func renderSocial(business domain.Business, c domain.SocialNetworksBlock) *SocialView {
	urls := nonEmpty(business.SameAs)
	if len(urls) == 0 {
		for _, p := range c.Platforms {
			if p.URL != "" {
				urls = append(urls, p.URL)
			}
		}
	}

	platforms := make([]PlatformView, 0, len(urls))
	for _, u := range urls {
		platform := blocks.DerivePlatform(u)
		platforms = append(platforms, PlatformView{Name: platform.Name, Icon: platform.Icon, URL: u})
	}
	return &SocialView{Platforms: platforms}
}

func renderCatalog(title, description string, items []domain.Product, pageType domain.PageType) *CatalogView {
	view := &CatalogView{
		Title:       title,
		Description: description,
		Items:       make([]CatalogItem, 0, len(items)),
	}

	for _, p := range FilterCatalog(items, pageType) {
		view.Items = append(view.Items, CatalogItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Category:    p.Category,
			Price:       p.Offers.Price,
			Currency:    p.Offers.PriceCurrency,
			Duration:    p.Duration,
		})
	}
	return view
}

// FilterCatalog оставляет позиции со статусом online/active; на странице bookings - только услуги
func FilterCatalog(items []domain.Product, pageType domain.PageType) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for i := range items {
		if !items[i].IsListed() {
			continue
		}
		if pageType == domain.PageTypeBookings && !items[i].IsService() {
			continue
		}
		out = append(out, items[i])
	}
	return out
}

// AddressLines строки адреса для отображения, пустые части пропускаются
func AddressLines(a domain.Address) []string {
	lines := make([]string, 0, 3)
	if a.Street != "" {
		lines = append(lines, a.Street)
	}
	cityLine := strings.TrimSpace(strings.Join(nonEmpty([]string{a.City, a.State, a.PostalCode}), ", "))
	if cityLine != "" {
		lines = append(lines, cityLine)
	}
	if a.Country != "" {
		lines = append(lines, a.Country)
	}
	return lines
}

// MapsURL ссылка на поиск адреса в Google Maps; пустая строка для пустого адреса
func MapsURL(a domain.Address) string {
	lines := AddressLines(a)
	if len(lines) == 0 {
		return ""
	}
	return googleMapsSearchURL + url.QueryEscape(strings.Join(lines, ", "))
}

func formatPhone(p domain.Phone) string {
	if p.Number == "" {
		return ""
	}
	return strings.TrimSpace(p.Code + " " + p.Number)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
