package domain

import (
	"encoding/json"
	"fmt"
)

// PageType тип страницы бизнеса
type PageType string

const (
	PageTypeProfile    PageType = "profile"
	PageTypeStorefront PageType = "storefront"
	PageTypeShop       PageType = "shop"
	PageTypeBookings   PageType = "bookings"
	PageTypeQuote      PageType = "quote"
)

// AllPageTypes returns all valid page types
func AllPageTypes() []PageType {
	return []PageType{
		PageTypeProfile,
		PageTypeStorefront,
		PageTypeShop,
		PageTypeBookings,
		PageTypeQuote,
	}
}

// IsValid checks if the page type is known
func (t PageType) IsValid() bool {
	for _, pt := range AllPageTypes() {
		if pt == t {
			return true
		}
	}
	return false
}

// Page страница бизнеса. На один тип - не больше одной страницы.
type Page struct {
	Type     PageType `json:"type"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Enabled  bool     `json:"enabled"`
	Settings Settings `json:"settings"`
}

// Clone возвращает глубокую копию страницы
func (p Page) Clone() Page {
	clone := p
	clone.Settings = p.Settings.Clone()
	return clone
}

// Settings настройки страницы: SEO-поля, список блоков и произвольные ключи,
// которые сервис не интерпретирует, но обязан сохранить.
type Settings struct {
	Headline    string
	Description string
	Blocks      []Block
	Extra       map[string]json.RawMessage
}

// Clone возвращает глубокую копию настроек
func (s Settings) Clone() Settings {
	clone := s
	if s.Blocks != nil {
		clone.Blocks = make([]Block, len(s.Blocks))
		for i, b := range s.Blocks {
			clone.Blocks[i] = b.Clone()
		}
	}
	if s.Extra != nil {
		clone.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			clone.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return clone
}

const (
	settingsKeyHeadline    = "headline"
	settingsKeyDescription = "description"
	settingsKeyBlocks      = "blocks"
)

// MarshalJSON реализует json.Marshaler
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Extra)+3)
	for k, v := range s.Extra {
		out[k] = v
	}
	out[settingsKeyHeadline] = s.Headline
	out[settingsKeyDescription] = s.Description

	blocks := s.Blocks
	if blocks == nil {
		blocks = []Block{}
	}
	out[settingsKeyBlocks] = blocks

	return json.Marshal(out)
}

// UnmarshalJSON реализует json.Unmarshaler
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	*s = Settings{}
	for k, v := range raw {
		var err error
		switch k {
		case settingsKeyHeadline:
			err = unmarshalOptionalString(v, &s.Headline)
		case settingsKeyDescription:
			err = unmarshalOptionalString(v, &s.Description)
		case settingsKeyBlocks:
			if string(v) != "null" {
				err = json.Unmarshal(v, &s.Blocks)
			}
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]json.RawMessage)
			}
			s.Extra[k] = v
		}
		if err != nil {
			return fmt.Errorf("settings.%s: %w", k, err)
		}
	}
	return nil
}

func unmarshalOptionalString(data json.RawMessage, dst *string) error {
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dst)
}
