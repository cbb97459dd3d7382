package domain

import "strings"

// Статусы позиций каталога, при которых позиция показывается на страницах
const (
	ProductStatusOnline = "online"
	ProductStatusActive = "active"
)

// ProductTypeService тип позиции каталога "услуга"
const ProductTypeService = "service"

// Offer цена позиции
type Offer struct {
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
	Availability  string  `json:"availability"`
}

// Product позиция каталога бизнеса: товар или услуга
type Product struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
	Type        string `json:"type,omitempty"`
	Status      string `json:"status,omitempty"`
	Offers      Offer  `json:"offers"`
	Duration    *int   `json:"duration,omitempty"` // в минутах
}

// IsListed returns true if the product should be shown on public pages
func (p *Product) IsListed() bool {
	status := strings.ToLower(p.Status)
	return status == ProductStatusOnline || status == ProductStatusActive
}

// IsService returns true if the product type is "service" (case-insensitive)
func (p *Product) IsService() bool {
	return strings.EqualFold(p.Type, ProductTypeService)
}

// DurationOrDefault возвращает длительность услуги или DefaultServiceDurationMinutes
func (p *Product) DurationOrDefault() int {
	if p.Duration == nil || *p.Duration <= 0 {
		return DefaultServiceDurationMinutes
	}
	return *p.Duration
}
