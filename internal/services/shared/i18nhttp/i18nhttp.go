package i18nhttp

import (
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/gt-examples/apartment-listings/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "al_lang"
)

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return platformi18n.SupportedTags()
}

// Default returns the default language tag.
func Default() language.Tag {
	return platformi18n.DefaultTag()
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// HasLanguageCookie reports whether the request already carries tag as its preference.
func HasLanguageCookie(r *http.Request, tag language.Tag) bool {
	if r == nil {
		return false
	}
	cookie, err := r.Cookie(LangCookieName)
	return err == nil && cookie.Value == tag.String()
}

// RouteLocale validates the locale segment of a path.
//
// Any well-formed BCP 47 tag is accepted and returned in canonical form; the
// formatter decides which rules apply. The bool is false for malformed tags.
func RouteLocale(segment string) (string, bool) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "", false
	}
	tag, err := language.Parse(segment)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}

// NativeLabel names tag in its own language.
func NativeLabel(tag language.Tag) string {
	return display.Self.Name(tag)
}

// BuildLanguageOptions returns supported language options with active selection.
// Each option links to path with its locale segment swapped.
func BuildLanguageOptions(supported []language.Tag, activeLang string, path string, rawQuery string, labelForTag func(tag language.Tag) string) []LanguageOption {
	options := make([]LanguageOption, 0, len(supported))
	activeTag := NormalizeTag(activeLang)
	for _, tag := range supported {
		label := tag.String()
		if labelForTag != nil {
			if resolved := strings.TrimSpace(labelForTag(tag)); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LocaleURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LocalePath prefixes rest with the locale segment.
func LocalePath(locale string, rest string) string {
	rest = strings.TrimPrefix(rest, "/")
	return "/" + locale + "/" + rest
}

// LocaleURL returns path with its first segment replaced by locale, keeping the query.
func LocaleURL(path string, rawQuery string, locale string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "/")
	rest := ""
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		rest = path[idx+1:]
	}
	out := LocalePath(locale, rest)
	if rawQuery != "" {
		out += "?" + rawQuery
	}
	return out
}
