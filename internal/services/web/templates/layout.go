package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
)

// Layout renders the document shell around its templ children.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		languages := LanguageOptions(page)

		h := newHTMLWriter(w)
		h.raw("<!DOCTYPE html>")
		h.open("html", a("lang", page.Lang))
		h.open("head")
		h.open("meta", a("charset", "utf-8"))
		h.open("meta", a("name", "viewport"), a("content", "width=device-width, initial-scale=1"))
		h.element("title", page.Title)
		h.open("meta", a("name", "description"), a("content", page.Description))
		h.open("meta", a("property", "og:title"), a("content", page.Title))
		h.open("meta", a("property", "og:description"), a("content", page.Description))
		h.open("meta", a("property", "og:type"), a("content", "website"))
		h.open("meta", a("property", "og:site_name"), a("content", SiteName))
		h.open("meta", a("property", "og:locale"), a("content", ogLocale(page.Lang)))
		for _, option := range languages {
			if !option.Active {
				h.open("meta", a("property", "og:locale:alternate"), a("content", ogLocale(option.Tag)))
			}
		}
		h.open("meta", a("name", "twitter:card"), a("content", "summary"))
		h.open("meta", a("name", "twitter:title"), a("content", page.Title))
		h.open("meta", a("name", "twitter:description"), a("content", page.Description))
		for _, option := range languages {
			h.open("link", a("rel", "alternate"), a("hreflang", option.Tag), a("href", option.URL))
		}
		h.open("link", a("rel", "stylesheet"), a("href", routepath.Static("site.css")))
		h.open("script", a("src", routepath.Static("filters.js")), attr{name: "defer", boolean: true})
		h.close("script")
		h.close("head")

		h.open("body")
		siteHeader(h, page, languages)
		h.open("main", a("class", "container"))
		h.render(ctx, children)
		h.close("main")
		h.close("body")
		h.close("html")
		return h.err
	})
}

func siteHeader(h *htmlWriter, page PageContext, languages []LanguageOption) {
	h.open("header", a("class", "site-header"))
	h.open("div", a("class", "container header-bar"))

	h.open("div", a("class", "brand"))
	h.element("a", SiteName, a("href", siteURL), a("class", "brand-site"), a("target", "_blank"), a("rel", "noopener noreferrer"))
	h.element("span", "/", a("class", "brand-sep"), a("aria-hidden", "true"))
	h.open("h1", a("class", "brand-title"))
	h.element("a", T(page.Loc, "Apartment Listings"), a("href", routepath.Index(page.homeLocale())))
	h.close("h1")
	h.close("div")

	h.open("div", a("class", "header-actions"))
	h.element("a", "GitHub", a("href", sourceURL), a("class", "source-link"), a("target", "_blank"), a("rel", "noopener noreferrer"), a("aria-label", T(page.Loc, "View on GitHub")))
	localeSelector(h, page, languages)
	h.close("div")

	h.close("div")
	h.close("header")
}

func localeSelector(h *htmlWriter, page PageContext, languages []LanguageOption) {
	h.open("nav", a("class", "locale-selector"), a("aria-label", T(page.Loc, "Language")))
	h.open("ul")
	for _, option := range languages {
		h.open("li")
		class := "locale-option"
		current := ""
		if option.Active {
			class += " is-active"
			current = "true"
		}
		h.open("a",
			a("href", option.URL),
			a("class", class),
			a("hreflang", option.Tag),
			a("lang", option.Tag),
			a("data-locale", option.Tag),
			optional("aria-current", current),
		)
		h.text(option.Label)
		h.close("a")
		h.close("li")
	}
	h.close("ul")
	h.close("nav")
}
