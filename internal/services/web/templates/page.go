package templates

import "strings"

// SiteName is the brand shown next to the page title.
const SiteName = "General Translation"

const (
	siteURL   = "https://generaltranslation.com"
	sourceURL = "https://github.com/gt-examples/apartment-listings"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	// Lang is the locale whose rules rendered the page.
	Lang string
	// RouteLocale is the locale segment of the request path.
	RouteLocale  string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Title        string
	Description  string
}

// ogLocale converts a BCP 47 tag to the Open Graph locale form.
func ogLocale(lang string) string {
	return strings.ReplaceAll(strings.TrimSpace(lang), "-", "_")
}

func (p PageContext) homeLocale() string {
	if locale := strings.TrimSpace(p.RouteLocale); locale != "" {
		return locale
	}
	return p.Lang
}
