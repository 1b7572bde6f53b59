package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// IndexPage renders the intro, filters and listing cards.
func IndexPage(view IndexView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)

		h.open("section", a("class", "intro"))
		h.element("h2", T(loc, "Find your next home"))
		h.element("p", T(loc, "Browse available apartments with rent prices, square footage, and availability dates. All listings are displayed with locale-aware formatting."))
		h.close("section")

		h.open("aside", a("class", "demo-notice"))
		h.element("p", T(loc, "This is an example application built with General Translation to demonstrate internationalization. Listings are fictional."))
		h.close("aside")

		filterForm(h, view, loc)

		h.element("p", T(loc, "Showing %d of %d apartments", view.Shown, view.Total),
			a("class", "result-count"),
			a("role", "status"),
			a("data-template", T(loc, "Showing %d of %d apartments")),
			a("data-total", strconv.Itoa(view.Total)),
		)
		h.open("div", a("class", "empty-state"), when(len(view.Cards) > 0, "hidden"))
		h.element("p", T(loc, "No apartments match these filters."))
		h.element("a", T(loc, "Clear filters"), a("href", view.ClearURL), a("class", "button"))
		h.close("div")
		if len(view.Cards) == 0 {
			return h.err
		}

		h.open("ul", a("class", "listing-grid"))
		for _, card := range view.Cards {
			h.open("li")
			apartmentCard(h, card, loc)
			h.close("li")
		}
		h.close("ul")
		return h.err
	})
}

func filterForm(h *htmlWriter, view IndexView, loc Localizer) {
	h.open("form", a("class", "filters"), a("method", "get"), a("action", view.Action), a("data-filters", ""))
	for _, control := range view.Filters {
		id := "filter-" + control.Name
		h.open("div", a("class", "filter"))
		h.element("label", control.Label, a("for", id))
		h.open("select", a("id", id), a("name", control.Name))
		for _, option := range control.Options {
			h.open("option", a("value", option.Value), a("data-href", option.URL), when(option.Selected, "selected"))
			h.text(option.Label)
			h.close("option")
		}
		h.close("select")
		h.close("div")
	}
	h.open("noscript")
	h.element("button", T(loc, "Apply filters"), a("type", "submit"), a("class", "button"))
	h.close("noscript")
	h.element("a", T(loc, "Clear filters"), a("href", view.ClearURL), a("class", "clear-filters"), when(!view.Filtered, "hidden"))
	h.close("form")
}

func apartmentCard(h *htmlWriter, card ApartmentCard, loc Localizer) {
	h.open("article",
		a("class", "card"),
		a("data-apartment", card.Name),
		a("data-bedrooms", strconv.Itoa(card.Facets.Bedrooms)),
		a("data-neighborhood", card.Facets.Neighborhood),
		a("data-status", card.Facets.Status),
	)
	h.open("div", a("class", "card-head"))
	h.open("div")
	h.open("h3", a("class", "card-title"))
	h.element("a", card.Name, a("href", card.URL))
	h.close("h3")
	h.element("p", card.Neighborhood, a("class", "card-neighborhood"))
	h.close("div")
	statusBadge(h, card.Status)
	h.close("div")

	rent(h, card.Rent)
	stats(h, card.Stats)

	h.open("div", a("class", "card-available"))
	h.element("p", T(loc, "Available from"), a("class", "caption"))
	h.element("p", card.AvailableFrom, a("class", "available-date"))
	h.close("div")

	featureTags(h, card.Features)
	h.close("article")
}

func statusBadge(h *htmlWriter, badge StatusBadge) {
	h.element("span", badge.Label, a("class", "badge "+badge.Tone))
}

func rent(h *htmlWriter, value string) {
	h.element("p", value, a("class", "rent"))
}

func stats(h *htmlWriter, items []Stat) {
	h.open("dl", a("class", "stats"))
	for _, stat := range items {
		h.open("div", a("class", "stat"))
		h.element("dt", stat.Label, a("class", "stat-label"))
		h.element("dd", stat.Value, a("class", "stat-value"))
		h.close("div")
	}
	h.close("dl")
}

func featureTags(h *htmlWriter, features []string) {
	if len(features) == 0 {
		return
	}
	h.open("ul", a("class", "features"))
	for _, feature := range features {
		h.element("li", feature, a("class", "feature-tag"))
	}
	h.close("ul")
}
