package render

import "github.com/m04kA/SMC-ProfileService/internal/domain"

// ViewTree результат рендеринга страницы: узлы в порядке блоков
type ViewTree struct {
	PageType     domain.PageType `json:"pageType"`
	BusinessName string          `json:"businessName"`
	BusinessSlug string          `json:"businessSlug"`
	Theme        domain.Theme    `json:"theme"`
	Nodes        []Node          `json:"nodes"`
}

// Node фрагмент отображения одного блока. Заполнено ровно одно поле-представление.
type Node struct {
	BlockID string           `json:"blockId"`
	Type    domain.BlockType `json:"type"`

	Text       *TextView       `json:"text,omitempty"`
	Link       *LinkView       `json:"link,omitempty"`
	Hours      *HoursView      `json:"hours,omitempty"`
	Contact    *ContactView    `json:"contact,omitempty"`
	Location   *LocationView   `json:"location,omitempty"`
	Facilities *FacilitiesView `json:"facilities,omitempty"`
	About      *AboutView      `json:"about,omitempty"`
	Social     *SocialView     `json:"social,omitempty"`
	Catalog    *CatalogView    `json:"catalog,omitempty"`
}

type TextView struct {
	Title   string           `json:"title"`
	Content string           `json:"content"`
	Align   domain.TextAlign `json:"align"`
}

// LinkView внешняя ссылка (url) или ссылка на другую страницу бизнеса (page_link)
type LinkView struct {
	Label    string          `json:"label"`
	Subtitle string          `json:"subtitle"`
	URL      string          `json:"url"`
	PageType domain.PageType `json:"pageType,omitempty"`
}

type HoursView struct {
	IsOpen247 bool      `json:"isOpen247"`
	Days      []DayView `json:"days"`
}

type DayView struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Label     string `json:"label"`
}

type ContactView struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	AltPhone string `json:"altPhone"`
	Email    string `json:"email"`
	Website  string `json:"website"`
}

type LocationView struct {
	LocationType domain.LocationType `json:"locationType"`
	Address      domain.Address      `json:"address"`
	Lines        []string            `json:"lines"`
	MapsURL      string              `json:"mapsUrl"`
}

type FacilitiesView struct {
	Items []string `json:"items"`
}

type AboutView struct {
	Summary string `json:"summary"`
}

type SocialView struct {
	Platforms []PlatformView `json:"platforms"`
}

type PlatformView struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

type CatalogView struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Items       []CatalogItem `json:"items"`
}

type CatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Duration    *int    `json:"duration,omitempty"`
}
