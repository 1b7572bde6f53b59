package format

import (
	"strconv"

	"github.com/gt-examples/apartment-listings/internal/platform/i18n"
	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
)

// nbsp separates an amount from a trailing currency symbol.
const nbsp = "\u00a0"

// rules holds the presentation conventions of one locale.
type rules struct {
	locale string
	// symbol is the local rendering of the US dollar sign.
	symbol string
	// symbolAfter places the symbol after the amount, separated by nbsp.
	symbolAfter bool
	// minGrouping is the smallest integer-part magnitude that gets group separators.
	minGrouping float64
	months      [12]string
	date        func(d domain.Date, months [12]string) string
}

var localeRules = map[string]rules{
	i18n.LocaleEnUS: {
		locale: i18n.LocaleEnUS,
		symbol: "$",
		months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		date: func(d domain.Date, months [12]string) string {
			return months[d.Month-1] + " " + strconv.Itoa(d.Day) + ", " + strconv.Itoa(d.Year)
		},
	},
	i18n.LocaleEsES: {
		locale:      i18n.LocaleEsES,
		symbol:      "US$",
		symbolAfter: true,
		minGrouping: 10000,
		months:      [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		date:        dayMonthYear,
	},
	i18n.LocaleFrFR: {
		locale:      i18n.LocaleFrFR,
		symbol:      "$US",
		symbolAfter: true,
		months:      [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		date:        dayMonthYear,
	},
	i18n.LocaleDeDE: {
		locale:      i18n.LocaleDeDE,
		symbol:      "$",
		symbolAfter: true,
		months:      [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		date: func(d domain.Date, _ [12]string) string {
			return pad2(d.Day) + "." + pad2(int(d.Month)) + "." + strconv.Itoa(d.Year)
		},
	},
	i18n.LocaleJaJP: {
		locale: i18n.LocaleJaJP,
		symbol: "$",
		months: [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		date: func(d domain.Date, _ [12]string) string {
			return strconv.Itoa(d.Year) + "/" + pad2(int(d.Month)) + "/" + pad2(d.Day)
		},
	},
}

// baseLanguageRules maps a bare language to the locale whose rules it borrows.
var baseLanguageRules = map[string]string{
	"en": i18n.LocaleEnUS,
	"es": i18n.LocaleEsES,
	"fr": i18n.LocaleFrFR,
	"de": i18n.LocaleDeDE,
	"ja": i18n.LocaleJaJP,
}

func dayMonthYear(d domain.Date, months [12]string) string {
	return strconv.Itoa(d.Day) + " " + months[d.Month-1] + " " + strconv.Itoa(d.Year)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
