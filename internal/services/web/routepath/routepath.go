// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root             = "/"
	RootPattern      = "/{$}"
	Health           = "/up"
	StaticPrefix     = "/static/"
	LocaleParam      = "locale"
	SlugParam        = "slug"
	LocalePattern    = "/{" + LocaleParam + "}"
	IndexPattern     = "/{" + LocaleParam + "}/{$}"
	ApartmentSegment = "apartment"
	ApartmentPattern = "/{" + LocaleParam + "}/" + ApartmentSegment + "/{" + SlugParam + "}"
)

// Index returns the listing index path for locale.
func Index(locale string) string {
	return "/" + escapeSegment(locale) + "/"
}

// Apartment returns the detail path for slug under locale.
func Apartment(locale string, slug string) string {
	return "/" + escapeSegment(locale) + "/" + ApartmentSegment + "/" + escapeSegment(slug)
}

// Static returns the public path of a static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
