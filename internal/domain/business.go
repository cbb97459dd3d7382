package domain

// Phone телефон бизнеса: код страны хранится отдельно от номера
type Phone struct {
	Code   string `json:"code"`
	Number string `json:"number"`
}

// Address адрес бизнеса
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// IsEmpty returns true if no address part is filled
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.PostalCode == "" && a.Country == ""
}

// DayHours расписание одного дня недели
type DayHours struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// Theme цвета публичного профиля
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

// Business профиль бизнеса. Поля верхнего уровня (phone, address, businessHours, ...)
// считаются каноническими: при рендеринге они приоритетнее копий внутри блоков.
type Business struct {
	ID                 string     `json:"_id"`
	Name               string     `json:"name"`
	Slug               string     `json:"slug"`
	Phone              Phone      `json:"phone"`
	Email              string     `json:"email"`
	URL                string     `json:"url"`
	Address            Address    `json:"address"`
	BusinessHours      []DayHours `json:"businessHours"`
	SelectedFacilities []string   `json:"selectedFacilities"`
	SameAs             []string   `json:"sameAs"`
	Description        string     `json:"description"`
	Theme              Theme      `json:"theme"`
	Timezone           string     `json:"timezone,omitempty"`
	Currency           string     `json:"currency,omitempty"`
	Pages              []Page     `json:"pages"`
}

// PageIndex возвращает индекс страницы с указанным типом или -1
func (b *Business) PageIndex(pageType PageType) int {
	for i := range b.Pages {
		if b.Pages[i].Type == pageType {
			return i
		}
	}
	return -1
}

// Clone возвращает глубокую копию профиля
func (b Business) Clone() Business {
	clone := b
	clone.BusinessHours = cloneSlice(b.BusinessHours)
	clone.SelectedFacilities = cloneSlice(b.SelectedFacilities)
	clone.SameAs = cloneSlice(b.SameAs)
	if b.Pages != nil {
		clone.Pages = make([]Page, len(b.Pages))
		for i, p := range b.Pages {
			clone.Pages[i] = p.Clone()
		}
	}
	return clone
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
