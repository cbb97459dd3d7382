package domain

import (
	"encoding/json"
	"fmt"
)

// BlockType тип блока страницы
type BlockType string

const (
	BlockTypeText           BlockType = "text"
	BlockTypeURL            BlockType = "url"
	BlockTypePageLink       BlockType = "page_link"
	BlockTypeOpeningHours   BlockType = "opening_hours"
	BlockTypeContactInfo    BlockType = "contact_info"
	BlockTypeLocation       BlockType = "location"
	BlockTypeFacilities     BlockType = "facilities"
	BlockTypeAbout          BlockType = "about"
	BlockTypeSocialNetworks BlockType = "social_networks"
	BlockTypeProducts       BlockType = "products"
	BlockTypeServices       BlockType = "services"
)

// LocationType способ задания адреса в блоке location
type LocationType string

const (
	LocationTypeManual LocationType = "manual"
	LocationTypeURL    LocationType = "url"
)

// TextAlign выравнивание текстового блока
type TextAlign string

const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

// Block элемент упорядоченного списка блоков страницы.
// Content - один из вариантов ниже; набор закрыт методом isBlockContent.
type Block struct {
	ID      string
	Type    BlockType
	Content BlockContent
}

// BlockContent поля конкретного варианта блока
type BlockContent interface {
	isBlockContent()
}

type TextBlock struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Align   TextAlign `json:"align"`
}

type URLBlock struct {
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
	URL      string `json:"url"`
}

type PageLinkBlock struct {
	Label    string   `json:"label"`
	Subtitle string   `json:"subtitle"`
	PageType PageType `json:"pageType"`
}

type OpeningHoursBlock struct {
	IsOpen247 bool       `json:"isOpen247"`
	Days      []DayHours `json:"days"`
}

type ContactInfoBlock struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	AltPhone string `json:"altPhone"`
	Email    string `json:"email"`
	Website  string `json:"website"`
}

type LocationBlock struct {
	LocationType LocationType `json:"locationType"`
	Street       string       `json:"street"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	PostalCode   string       `json:"postalCode"`
	Country      string       `json:"country"`
	URL          string       `json:"url"`
}

type FacilitiesBlock struct {
	SelectedFacilities []string `json:"selectedFacilities"`
}

type AboutBlock struct {
	Summary string `json:"summary"`
}

// SocialPlatform ссылка на соцсеть. Name на канонической стороне не хранится,
// а выводится из URL.
type SocialPlatform struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type SocialNetworksBlock struct {
	Platforms []SocialPlatform `json:"platforms"`
}

// ProductsBlock и ServicesBlock только отображают каталог
type ProductsBlock struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ServicesBlock struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnknownBlock блок неизвестного типа, прочитанный из хранилища.
// Сохраняется как есть и не отображается.
type UnknownBlock struct {
	Fields map[string]json.RawMessage
}

func (TextBlock) isBlockContent()           {}
func (URLBlock) isBlockContent()            {}
func (PageLinkBlock) isBlockContent()       {}
func (OpeningHoursBlock) isBlockContent()   {}
func (ContactInfoBlock) isBlockContent()    {}
func (LocationBlock) isBlockContent()       {}
func (FacilitiesBlock) isBlockContent()     {}
func (AboutBlock) isBlockContent()          {}
func (SocialNetworksBlock) isBlockContent() {}
func (ProductsBlock) isBlockContent()       {}
func (ServicesBlock) isBlockContent()       {}
func (UnknownBlock) isBlockContent()        {}

// KnownBlockTypes returns every block type the service can create and render
func KnownBlockTypes() []BlockType {
	return []BlockType{
		BlockTypeText,
		BlockTypeURL,
		BlockTypePageLink,
		BlockTypeOpeningHours,
		BlockTypeContactInfo,
		BlockTypeLocation,
		BlockTypeFacilities,
		BlockTypeAbout,
		BlockTypeSocialNetworks,
		BlockTypeProducts,
		BlockTypeServices,
	}
}

// IsKnown checks if the block type is one of KnownBlockTypes
func (t BlockType) IsKnown() bool {
	for _, known := range KnownBlockTypes() {
		if known == t {
			return true
		}
	}
	return false
}

// DecodeBlockContent декодирует поля варианта по типу блока.
// Для неизвестного типа возвращает UnknownBlock с исходными полями.
func DecodeBlockContent(blockType BlockType, data []byte) (BlockContent, error) {
	switch blockType {
	case BlockTypeText:
		return decodeAs[TextBlock](data)
	case BlockTypeURL:
		return decodeAs[URLBlock](data)
	case BlockTypePageLink:
		return decodeAs[PageLinkBlock](data)
	case BlockTypeOpeningHours:
		return decodeAs[OpeningHoursBlock](data)
	case BlockTypeContactInfo:
		return decodeAs[ContactInfoBlock](data)
	case BlockTypeLocation:
		return decodeAs[LocationBlock](data)
	case BlockTypeFacilities:
		return decodeAs[FacilitiesBlock](data)
	case BlockTypeAbout:
		return decodeAs[AboutBlock](data)
	case BlockTypeSocialNetworks:
		return decodeAs[SocialNetworksBlock](data)
	case BlockTypeProducts:
		return decodeAs[ProductsBlock](data)
	case BlockTypeServices:
		return decodeAs[ServicesBlock](data)
	default:
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		delete(fields, "id")
		delete(fields, "type")
		return UnknownBlock{Fields: fields}, nil
	}
}

func decodeAs[T BlockContent](data []byte) (BlockContent, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ContentFields возвращает поля варианта в виде JSON-объекта (без id и type)
func ContentFields(content BlockContent) (map[string]json.RawMessage, error) {
	if unknown, ok := content.(UnknownBlock); ok {
		fields := make(map[string]json.RawMessage, len(unknown.Fields))
		for k, v := range unknown.Fields {
			fields[k] = v
		}
		return fields, nil
	}

	data, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// MarshalJSON сериализует блок плоским объектом: {"id", "type", ...поля варианта}
func (b Block) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if b.Content != nil {
		var err error
		fields, err = ContentFields(b.Content)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", b.ID, err)
		}
	}

	id, _ := json.Marshal(b.ID)
	typ, _ := json.Marshal(b.Type)
	fields["id"] = id
	fields["type"] = typ

	return json.Marshal(fields)
}

// UnmarshalJSON реализует json.Unmarshaler
func (b *Block) UnmarshalJSON(data []byte) error {
	var header struct {
		ID   string    `json:"id"`
		Type BlockType `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return fmt.Errorf("block: %w", err)
	}

	content, err := DecodeBlockContent(header.Type, data)
	if err != nil {
		return fmt.Errorf("block %s (%s): %w", header.ID, header.Type, err)
	}

	b.ID = header.ID
	b.Type = header.Type
	b.Content = content
	return nil
}

// Clone возвращает копию блока, не разделяющую слайсы с оригиналом
func (b Block) Clone() Block {
	clone := b
	switch c := b.Content.(type) {
	case OpeningHoursBlock:
		c.Days = cloneSlice(c.Days)
		clone.Content = c
	case FacilitiesBlock:
		c.SelectedFacilities = cloneSlice(c.SelectedFacilities)
		clone.Content = c
	case SocialNetworksBlock:
		c.Platforms = cloneSlice(c.Platforms)
		clone.Content = c
	case UnknownBlock:
		fields := make(map[string]json.RawMessage, len(c.Fields))
		for k, v := range c.Fields {
			fields[k] = append(json.RawMessage(nil), v...)
		}
		clone.Content = UnknownBlock{Fields: fields}
	}
	return clone
}
