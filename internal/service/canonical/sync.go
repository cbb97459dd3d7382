// Package canonical держит в согласии поля блоков и канонические поля профиля бизнеса.
// SyncCanonicalFields - единственное место, где правка блока пишет в профиль.
package canonical

import (
	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// SyncCanonicalFields переносит изменённые поля блока в канонические поля профиля.
// Учитываются только ключи, присутствующие в patch. Функция тотальная: для типов
// блоков и полей вне таблицы правил профиль возвращается без изменений.
// Входной business не изменяется.
func SyncCanonicalFields(business domain.Business, block domain.Block, patch domain.Patch) domain.Business {
	out := business.Clone()
	if len(patch) == 0 {
		return out
	}

	switch block.Content.(type) {
	case domain.OpeningHoursBlock:
		syncHours(&out, patch)
	case domain.ContactInfoBlock:
		syncContact(&out, patch)
	case domain.LocationBlock:
		syncLocation(&out, block, patch)
	case domain.AboutBlock:
		syncAbout(&out, patch)
	case domain.FacilitiesBlock:
		syncFacilities(&out, patch)
	case domain.SocialNetworksBlock:
		syncSocial(&out, patch)
	case domain.TextBlock, domain.URLBlock, domain.PageLinkBlock,
		domain.ProductsBlock, domain.ServicesBlock, domain.UnknownBlock:
		// канонических полей нет
	}

	return out
}

func syncHours(business *domain.Business, patch domain.Patch) {
	if !patch.Has("days") {
		return
	}
	var fields domain.OpeningHoursBlock
	if err := patch.Decode(&fields); err != nil {
		return
	}
	business.BusinessHours = nonNil(fields.Days)
}

// syncContact пишет только phone.number: код страны в редакторе блока не редактируется
func syncContact(business *domain.Business, patch domain.Patch) {
	var fields domain.ContactInfoBlock
	if err := patch.Decode(&fields); err != nil {
		return
	}

	if patch.Has("phone") {
		business.Phone.Number = fields.Phone
	}
	if patch.Has("email") {
		business.Email = fields.Email
	}
	if patch.Has("website") {
		business.URL = fields.Website
	}
}

// syncLocation переносит адрес только для ручного ввода. Пустые значения
// не затирают канонический адрес.
func syncLocation(business *domain.Business, block domain.Block, patch domain.Patch) {
	var fields domain.LocationBlock
	if err := patch.Decode(&fields); err != nil {
		return
	}

	locationType := fields.LocationType
	if !patch.Has("locationType") {
		if current, ok := block.Content.(domain.LocationBlock); ok {
			locationType = current.LocationType
		}
	}
	if locationType != domain.LocationTypeManual {
		return
	}

	address := &business.Address
	address.Street = orPrevious(patch, "street", fields.Street, address.Street)
	address.City = orPrevious(patch, "city", fields.City, address.City)
	address.State = orPrevious(patch, "state", fields.State, address.State)
	address.PostalCode = orPrevious(patch, "postalCode", fields.PostalCode, address.PostalCode)
	address.Country = orPrevious(patch, "country", fields.Country, address.Country)
}

func syncAbout(business *domain.Business, patch domain.Patch) {
	if !patch.Has("summary") {
		return
	}
	var fields domain.AboutBlock
	if err := patch.Decode(&fields); err != nil {
		return
	}
	business.Description = fields.Summary
}

func syncFacilities(business *domain.Business, patch domain.Patch) {
	if !patch.Has("selectedFacilities") {
		return
	}
	var fields domain.FacilitiesBlock
	if err := patch.Decode(&fields); err != nil {
		return
	}
	business.SelectedFacilities = nonNil(fields.SelectedFacilities)
}

// syncSocial: в sameAs хранятся только URL, имя платформы выводится из URL при чтении
func syncSocial(business *domain.Business, patch domain.Patch) {
	if !patch.Has("platforms") {
		return
	}
	var fields domain.SocialNetworksBlock
	if err := patch.Decode(&fields); err != nil {
		return
	}

	sameAs := make([]string, 0, len(fields.Platforms))
	for _, p := range fields.Platforms {
		if p.URL != "" {
			sameAs = append(sameAs, p.URL)
		}
	}
	business.SameAs = sameAs
}

func orPrevious(patch domain.Patch, key, value, previous string) string {
	if !patch.Has(key) || value == "" {
		return previous
	}
	return value
}

func nonNil[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
