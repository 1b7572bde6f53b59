package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DetailPage renders one apartment with its price and contact cards.
func DetailPage(view DetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)

		breadcrumbs(h, view.Breadcrumbs)
		h.element("a", "← "+T(loc, "Back to all listings"), a("href", view.BackURL), a("class", "back-link"))

		h.open("div", a("class", "detail-layout"))
		h.open("article", a("class", "detail-main"))
		h.open("header", a("class", "detail-head"))
		h.open("div", a("class", "detail-title"))
		h.element("h2", view.Name)
		statusBadge(h, view.Status)
		h.close("div")
		h.element("p", view.Neighborhood, a("class", "card-neighborhood"))
		h.close("header")

		stats(h, view.Stats)

		section(h, T(loc, "About this apartment"), "description", func() {
			h.element("p", view.Description)
		})
		if len(view.Amenities) > 0 {
			section(h, T(loc, "Amenities"), "amenities", func() {
				h.open("ul", a("class", "amenity-list"))
				for _, amenity := range view.Amenities {
					h.element("li", amenity)
				}
				h.close("ul")
			})
		}
		section(h, T(loc, "Neighborhood"), "neighborhood", func() {
			h.element("p", view.NeighborhoodInfo)
		})
		h.close("article")

		h.open("aside", a("class", "detail-side"))
		priceCard(h, view)
		contactCard(h, loc)
		h.close("aside")
		h.close("div")
		return h.err
	})
}

func section(h *htmlWriter, heading string, class string, body func()) {
	h.open("section", a("class", "detail-section "+class))
	h.element("h3", heading)
	body()
	h.close("section")
}

func breadcrumbs(h *htmlWriter, items []BreadcrumbItem) {
	if len(items) == 0 {
		return
	}
	h.open("nav", a("class", "breadcrumbs"), a("aria-label", "breadcrumb"))
	h.open("ol")
	for idx, item := range items {
		h.open("li")
		if item.URL != "" && idx < len(items)-1 {
			h.element("a", item.Label, a("href", item.URL))
		} else {
			h.element("span", item.Label, a("aria-current", "page"))
		}
		h.close("li")
	}
	h.close("ol")
	h.close("nav")
}

func priceCard(h *htmlWriter, view DetailView) {
	h.open("section", a("class", "price-card"))
	rent(h, view.Rent)
	h.open("dl", a("class", "price-details"))
	for _, detail := range view.Details {
		h.open("div", a("class", "price-detail"))
		h.element("dt", detail.Label)
		h.element("dd", detail.Value)
		h.close("div")
	}
	h.close("dl")
	featureTags(h, view.Features)
	h.close("section")
}

func contactCard(h *htmlWriter, loc Localizer) {
	h.open("section", a("class", "contact-card"))
	h.element("h3", T(loc, "Interested in this apartment?"))
	h.element("p", T(loc, "Get in touch to schedule a viewing or ask questions about this listing."))
	h.element("button", T(loc, "Schedule a viewing"), a("type", "button"), a("class", "button"), attr{name: "disabled", boolean: true})
	h.element("button", T(loc, "Send a message"), a("type", "button"), a("class", "button button-secondary"), attr{name: "disabled", boolean: true})
	h.element("p", T(loc, "This is a demo. No real inquiries are sent."), a("class", "caption"))
	h.close("section")
}
