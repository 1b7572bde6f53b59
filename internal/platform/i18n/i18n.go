// Package i18n declares the supported locales and matches requested
// languages against them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported locale identifiers.
const (
	LocaleEnUS = "en-US"
	LocaleEsES = "es-ES"
	LocaleFrFR = "fr-FR"
	LocaleDeDE = "de-DE"
	LocaleJaJP = "ja-JP"
)

// DefaultLocale is used when no requested language can be matched.
const DefaultLocale = LocaleEnUS

var supportedTags = []language.Tag{
	language.MustParse(LocaleEnUS),
	language.MustParse(LocaleEsES),
	language.MustParse(LocaleFrFR),
	language.MustParse(LocaleDeDE),
	language.MustParse(LocaleJaJP),
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported tags, default first.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supportedTags...)
}

// SupportedLocales returns the supported locale identifiers, default first.
func SupportedLocales() []string {
	out := make([]string, len(supportedTags))
	for i, tag := range supportedTags {
		out[i] = tag.String()
	}
	return out
}

// DefaultTag returns the default tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// IsSupported reports whether locale is exactly one of the supported identifiers.
func IsSupported(locale string) bool {
	for _, tag := range supportedTags {
		if tag.String() == locale {
			return true
		}
	}
	return false
}

// ParseTag parses value and maps it to the closest supported tag.
// The bool is false when value is malformed or matches no supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[idx], true
}

// MatchTags returns the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[idx]
}
