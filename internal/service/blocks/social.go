package blocks

import "strings"

// Platform соцсеть, определённая по URL
type Platform struct {
	Name string
	Icon string
}

// PlatformWebsite используется, когда URL не похож ни на одну известную соцсеть
const PlatformWebsite = "website"

// knownPlatforms порядок важен: проверяется первое совпадение подстроки
var knownPlatforms = []string{
	"facebook",
	"instagram",
	"twitter",
	"linkedin",
	"youtube",
	"github",
	"whatsapp",
}

// DerivePlatform определяет соцсеть по подстроке в URL.
// Используется и для канонического sameAs, и для platforms блока.
func DerivePlatform(url string) Platform {
	lower := strings.ToLower(url)
	for _, name := range knownPlatforms {
		if strings.Contains(lower, name) {
			return Platform{Name: name, Icon: name}
		}
	}
	return Platform{Name: PlatformWebsite, Icon: "globe"}
}
