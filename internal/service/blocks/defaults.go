package blocks

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// newBlockID генератор id блоков. id не переиспользуются: каждый вызов - новый UUID v4.
var newBlockID = uuid.NewString

// weekDays порядок дней в блоке часов работы по умолчанию
var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	defaultOpenTime  = "09:00"
	defaultCloseTime = "17:00"
)

// CreateDefaultBlock создает полностью заполненный блок указанного типа.
// Поля, у которых есть каноническое значение в профиле, берутся из business.
// Все слайсы не nil, чтобы в JSON присутствовали все поля варианта.
func CreateDefaultBlock(blockType domain.BlockType, business domain.Business) (domain.Block, error) {
	content, err := defaultContent(blockType, business)
	if err != nil {
		return domain.Block{}, err
	}

	return domain.Block{
		ID:      newBlockID(),
		Type:    blockType,
		Content: content,
	}, nil
}

func defaultContent(blockType domain.BlockType, business domain.Business) (domain.BlockContent, error) {
	switch blockType {
	case domain.BlockTypeText:
		return domain.TextBlock{Align: domain.TextAlignLeft}, nil

	case domain.BlockTypeURL:
		return domain.URLBlock{}, nil

	case domain.BlockTypePageLink:
		return domain.PageLinkBlock{PageType: domain.PageTypeShop}, nil

	case domain.BlockTypeOpeningHours:
		days := copyOrEmpty(business.BusinessHours)
		if len(days) == 0 {
			days = DefaultWeek()
		}
		return domain.OpeningHoursBlock{IsOpen247: false, Days: days}, nil

	case domain.BlockTypeContactInfo:
		return domain.ContactInfoBlock{
			FullName: business.Name,
			Phone:    business.Phone.Number,
			Email:    business.Email,
			Website:  business.URL,
		}, nil

	case domain.BlockTypeLocation:
		return domain.LocationBlock{
			LocationType: domain.LocationTypeManual,
			Street:       business.Address.Street,
			City:         business.Address.City,
			State:        business.Address.State,
			PostalCode:   business.Address.PostalCode,
			Country:      business.Address.Country,
		}, nil

	case domain.BlockTypeFacilities:
		return domain.FacilitiesBlock{SelectedFacilities: copyOrEmpty(business.SelectedFacilities)}, nil

	case domain.BlockTypeAbout:
		return domain.AboutBlock{Summary: business.Description}, nil

	case domain.BlockTypeSocialNetworks:
		platforms := make([]domain.SocialPlatform, 0, len(business.SameAs))
		for _, url := range business.SameAs {
			if url == "" {
				continue
			}
			platforms = append(platforms, domain.SocialPlatform{Name: DerivePlatform(url).Name, URL: url})
		}
		return domain.SocialNetworksBlock{Platforms: platforms}, nil

	case domain.BlockTypeProducts:
		return domain.ProductsBlock{Title: "Products"}, nil

	case domain.BlockTypeServices:
		return domain.ServicesBlock{Title: "Services"}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBlockType, blockType)
	}
}

// DefaultWeek расписание по умолчанию: будни 09:00-17:00, выходные закрыто
func DefaultWeek() []domain.DayHours {
	days := make([]domain.DayHours, len(weekDays))
	for i, day := range weekDays {
		open := i < 5
		days[i] = domain.DayHours{
			Day:       day,
			IsOpen:    open,
			OpenTime:  defaultOpenTime,
			CloseTime: defaultCloseTime,
		}
	}
	return days
}

// IsSupported checks if CreateDefaultBlock can build the block type
func IsSupported(blockType domain.BlockType) bool {
	return blockType.IsKnown()
}

// SupportedTypes returns block types available in the editor's "add block" menu
func SupportedTypes() []domain.BlockType {
	return domain.KnownBlockTypes()
}

func copyOrEmpty[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}
