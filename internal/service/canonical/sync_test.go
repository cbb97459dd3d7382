package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
	"github.com/m04kA/SMC-ProfileService/internal/service/blocks"
)

func baseBusiness() domain.Business {
	return domain.Business{
		ID:    "biz-1",
		Name:  "Green Cafe",
		Phone: domain.Phone{Code: "+44", Number: "1111"},
		Email: "old@green.cafe",
		URL:   "https://old.green.cafe",
		Address: domain.Address{
			Street:     "1 Main St",
			City:       "London",
			PostalCode: "N1",
			Country:    "UK",
		},
		BusinessHours:      []domain.DayHours{{Day: "Monday", IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"}},
		SelectedFacilities: []string{"wifi"},
		SameAs:             []string{"https://instagram.com/old"},
		Description:        "old",
	}
}

func TestSync_OpeningHoursRoundTrip(t *testing.T) {
	business := baseBusiness()
	block := domain.Block{ID: "h", Type: domain.BlockTypeOpeningHours, Content: domain.OpeningHoursBlock{}}
	days := []domain.DayHours{
		{Day: "Monday", IsOpen: true, OpenTime: "08:00", CloseTime: "20:00"},
		{Day: "Sunday", IsOpen: false, OpenTime: "09:00", CloseTime: "17:00"},
	}

	list, err := blocks.UpdateBlock([]domain.Block{block}, "h", domain.Patch{"days": days})
	require.NoError(t, err)
	synced := SyncCanonicalFields(business, block, domain.Patch{"days": days})

	assert.Equal(t, days, synced.BusinessHours)
	assert.Equal(t, list[0].Content.(domain.OpeningHoursBlock).Days, synced.BusinessHours)
	// исходный профиль не изменился
	assert.Equal(t, "09:00", business.BusinessHours[0].OpenTime)
}

func TestSync_OpeningHoursIgnoresIsOpen247Only(t *testing.T) {
	business := baseBusiness()
	block := domain.Block{ID: "h", Type: domain.BlockTypeOpeningHours, Content: domain.OpeningHoursBlock{}}

	synced := SyncCanonicalFields(business, block, domain.Patch{"isOpen247": true})
	assert.Equal(t, business.BusinessHours, synced.BusinessHours)
}

func TestSync_ContactWritesNumberOnly(t *testing.T) {
	business := baseBusiness()
	block := domain.Block{ID: "c", Type: domain.BlockTypeContactInfo, Content: domain.ContactInfoBlock{}}

	synced := SyncCanonicalFields(business, block, domain.Patch{"phone": "2222"})

	assert.Equal(t, domain.Phone{Code: "+44", Number: "2222"}, synced.Phone)
	assert.Equal(t, "old@green.cafe", synced.Email)
	assert.Equal(t, "https://old.green.cafe", synced.URL)
}

func TestSync_ContactEmailAndWebsite(t *testing.T) {
	business := baseBusiness()
	block := domain.Block{ID: "c", Type: domain.BlockTypeContactInfo, Content: domain.ContactInfoBlock{}}

	synced := SyncCanonicalFields(business, block, domain.Patch{
		"email":    "new@green.cafe",
		"website":  "https://green.cafe",
		"fullName": "ignored",
		"altPhone": "ignored",
	})

	assert.Equal(t, "new@green.cafe", synced.Email)
	assert.Equal(t, "https://green.cafe", synced.URL)
	assert.Equal(t, "Green Cafe", synced.Name)
	assert.Equal(t, "1111", synced.Phone.Number)
}

func TestSync_LocationManualKeepsPreviousOnEmpty(t *testing.T) {
	business := baseBusiness()
	block := domain.Block{ID: "l", Type: domain.BlockTypeLocation, Content: domain.LocationBlock{LocationType: domain.LocationTypeManual}}

	synced := SyncCanonicalFields(business, block, domain.Patch{
		"street": "2 High St",
		"city":   "",
		"state":  "Greater London",
	})

	assert.Equal(t, domain.Address{
		Street:     "2 High St",
		City:       "London",
		State:      "Greater London",
		PostalCode: "N1",
		Country:    "UK",
	}, synced.Address)
}

func TestSync_LocationURLModeDoesNotTouchAddress(t *testing.T) {
	business := baseBusiness()
	block := domain.Block{ID: "l", Type: domain.BlockTypeLocation, Content: domain.LocationBlock{LocationType: domain.LocationTypeURL}}

	synced := SyncCanonicalFields(business, block, domain.Patch{"street": "2 High St", "url": "https://maps.example/x"})
	assert.Equal(t, business.Address, synced.Address)

	// переключение на ручной ввод в том же патче
	synced = SyncCanonicalFields(business, block, domain.Patch{"locationType": "manual", "street": "2 High St"})
	assert.Equal(t, "2 High St", synced.Address.Street)
}

func TestSync_About(t *testing.T) {
	block := domain.Block{ID: "a", Type: domain.BlockTypeAbout, Content: domain.AboutBlock{}}

	synced := SyncCanonicalFields(baseBusiness(), block, domain.Patch{"summary": "new story"})
	assert.Equal(t, "new story", synced.Description)
}

func TestSync_Facilities(t *testing.T) {
	block := domain.Block{ID: "f", Type: domain.BlockTypeFacilities, Content: domain.FacilitiesBlock{}}

	synced := SyncCanonicalFields(baseBusiness(), block, domain.Patch{"selectedFacilities": []string{"parking", "pool"}})
	assert.Equal(t, []string{"parking", "pool"}, synced.SelectedFacilities)

	synced = SyncCanonicalFields(baseBusiness(), block, domain.Patch{"selectedFacilities": []string{}})
	assert.NotNil(t, synced.SelectedFacilities)
	assert.Empty(t, synced.SelectedFacilities)
}

func TestSync_SocialFacebookScenario(t *testing.T) {
	business := baseBusiness()
	business.SameAs = nil

	created, err := blocks.CreateDefaultBlock(domain.BlockTypeSocialNetworks, business)
	require.NoError(t, err)
	list := []domain.Block{created}

	// выбрана платформа, URL ещё пустой
	step1 := domain.Patch{"platforms": []domain.SocialPlatform{{Name: "facebook", URL: ""}}}
	list, err = blocks.UpdateBlock(list, created.ID, step1)
	require.NoError(t, err)
	business = SyncCanonicalFields(business, list[0], step1)
	assert.Empty(t, business.SameAs)

	// введён URL
	step2 := domain.Patch{"platforms": []domain.SocialPlatform{{Name: "facebook", URL: "https://facebook.com/x"}}}
	list, err = blocks.UpdateBlock(list, created.ID, step2)
	require.NoError(t, err)
	business = SyncCanonicalFields(business, list[0], step2)

	assert.Equal(t, []string{"https://facebook.com/x"}, business.SameAs)
	assert.Equal(t, "facebook", blocks.DerivePlatform(business.SameAs[0]).Name)
}

func TestSync_BlocksWithoutCanonicalFieldsAreNoop(t *testing.T) {
	business := baseBusiness()
	cases := []domain.Block{
		{ID: "t", Type: domain.BlockTypeText, Content: domain.TextBlock{}},
		{ID: "u", Type: domain.BlockTypeURL, Content: domain.URLBlock{}},
		{ID: "p", Type: domain.BlockTypeProducts, Content: domain.ProductsBlock{}},
		{ID: "x", Type: "carousel", Content: domain.UnknownBlock{}},
	}

	for _, block := range cases {
		synced := SyncCanonicalFields(business, block, domain.Patch{"title": "x", "url": "y", "summary": "z"})
		assert.Equal(t, business, synced, string(block.Type))
	}
}

func TestSync_InvalidValuesAreIgnored(t *testing.T) {
	business := baseBusiness()
	block := domain.Block{ID: "h", Type: domain.BlockTypeOpeningHours, Content: domain.OpeningHoursBlock{}}

	synced := SyncCanonicalFields(business, block, domain.Patch{"days": "always"})
	assert.Equal(t, business, synced)
}
