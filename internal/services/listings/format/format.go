// Package format turns raw apartment fields into display strings for a locale.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gt-examples/apartment-listings/internal/platform/i18n"
	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
)

// Translator resolves a canonical English string for a locale.
type Translator interface {
	Translate(locale string, canonical string) string
}

// Formatter renders values with one locale's rules. It is safe for concurrent use.
type Formatter struct {
	rules      rules
	tag        language.Tag
	printer    *message.Printer
	translator Translator
}

// New resolves the rules for locale, falling back to the language's base
// locale and then to the default locale.
func New(locale string, translator Translator) Formatter {
	r := resolveRules(locale)
	tag := language.MustParse(r.locale)
	return Formatter{
		rules:      r,
		tag:        tag,
		printer:    message.NewPrinter(tag),
		translator: translator,
	}
}

func resolveRules(locale string) rules {
	locale = strings.TrimSpace(locale)
	if r, ok := localeRules[locale]; ok {
		return r
	}
	if tag, err := language.Parse(locale); err == nil {
		if r, ok := localeRules[tag.String()]; ok {
			return r
		}
		base, _ := tag.Base()
		if fallback, ok := baseLanguageRules[base.String()]; ok {
			return localeRules[fallback]
		}
	}
	return localeRules[i18n.DefaultLocale]
}

// Locale returns the locale whose rules are applied.
func (f Formatter) Locale() string {
	return f.rules.locale
}

// Text translates a canonical string.
func (f Formatter) Text(canonical string) string {
	if f.translator == nil {
		return canonical
	}
	return f.translator.Translate(f.rules.locale, canonical)
}

// Neighborhood returns the localized neighborhood name.
func (f Formatter) Neighborhood(n domain.Neighborhood) string {
	return f.Text(string(n))
}

// Feature returns the localized feature tag.
func (f Formatter) Feature(feature domain.Feature) string {
	return f.Text(string(feature))
}

// Amenity returns the localized amenity description.
func (f Formatter) Amenity(amenity string) string {
	return f.Text(amenity)
}

// StatusLabel returns the localized status label.
func (f Formatter) StatusLabel(status domain.Status) string {
	switch status {
	case domain.StatusAvailable:
		return f.Text("Available")
	case domain.StatusPending:
		return f.Text("Pending")
	case domain.StatusLeased:
		return f.Text("Leased")
	default:
		panic(fmt.Sprintf("format: unmapped status %d", status))
	}
}

// StatusTone returns the badge style for status.
func (f Formatter) StatusTone(status domain.Status) string {
	switch status {
	case domain.StatusAvailable:
		return "badge-available"
	case domain.StatusPending:
		return "badge-pending"
	case domain.StatusLeased:
		return "badge-leased"
	default:
		panic(fmt.Sprintf("format: unmapped status %d", status))
	}
}

// Bedrooms returns the localized studio label for zero, otherwise the count.
func (f Formatter) Bedrooms(n int) string {
	if n == 0 {
		return f.Text("Studio")
	}
	return f.Integer(n)
}

// Integer groups n with the locale's separators.
func (f Formatter) Integer(n int) string {
	return f.printer.Sprint(number.Decimal(n, f.grouping(float64(n))...))
}

// Number formats v with up to two fraction digits.
func (f Formatter) Number(v float64) string {
	opts := append(f.grouping(v), number.MaxFractionDigits(2))
	return f.printer.Sprint(number.Decimal(v, opts...))
}

// grouping drops group separators below the locale's minimum grouping magnitude.
func (f Formatter) grouping(v float64) []number.Option {
	if math.Abs(v) < f.rules.minGrouping {
		return []number.Option{number.NoSeparator()}
	}
	return nil
}

// Currency formats whole US dollars with the currency's standard fraction digits.
func (f Formatter) Currency(amount int) string {
	scale, _ := currency.Standard.Rounding(currency.USD)
	opts := append(f.grouping(float64(amount)), number.Scale(scale))
	digits := f.printer.Sprint(number.Decimal(float64(amount), opts...))
	if f.rules.symbolAfter {
		return digits + nbsp + f.rules.symbol
	}
	return f.rules.symbol + digits
}

// Rent formats a monthly rent with the localized period qualifier.
func (f Formatter) Rent(amount int) string {
	return f.Currency(amount) + " " + f.Text("/ month")
}

// Deposit formats a one-time amount.
func (f Formatter) Deposit(amount int) string {
	return f.Currency(amount)
}

// Date formats d with the locale's medium date pattern.
func (f Formatter) Date(d domain.Date) string {
	if d.Month < time.January || d.Month > time.December {
		return d.String()
	}
	return f.rules.date(d, f.rules.months)
}

// Tag returns the language tag of the applied rules.
func (f Formatter) Tag() language.Tag {
	return f.tag
}
