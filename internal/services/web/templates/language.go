package templates

import (
	"golang.org/x/text/language"

	"github.com/gt-examples/apartment-listings/internal/services/shared/i18nhttp"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption = i18nhttp.LanguageOption

// LanguageOptions links the current page in every supported language.
func LanguageOptions(page PageContext) []LanguageOption {
	return i18nhttp.BuildLanguageOptions(i18nhttp.Supported(), page.Lang, page.CurrentPath, page.CurrentQuery, func(tag language.Tag) string {
		return i18nhttp.NativeLabel(tag)
	})
}
