package listings

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	platformi18n "github.com/gt-examples/apartment-listings/internal/platform/i18n"
	platformotel "github.com/gt-examples/apartment-listings/internal/platform/otel"
	"github.com/gt-examples/apartment-listings/internal/services/listings/filter"
	"github.com/gt-examples/apartment-listings/internal/services/listings/format"
	"github.com/gt-examples/apartment-listings/internal/services/shared/i18nhttp"
	module "github.com/gt-examples/apartment-listings/internal/services/web/module"
	apperrors "github.com/gt-examples/apartment-listings/internal/services/web/platform/errors"
	"github.com/gt-examples/apartment-listings/internal/services/web/platform/httpx"
	"github.com/gt-examples/apartment-listings/internal/services/web/platform/pagerender"
	"github.com/gt-examples/apartment-listings/internal/services/web/platform/weberror"
	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
	webtemplates "github.com/gt-examples/apartment-listings/internal/services/web/templates"
)

type handlers struct {
	service      service
	translations module.Translations
	logger       *slog.Logger
	tracer       trace.Tracer
}

func newHandlers(s service, translations module.Translations, logger *slog.Logger) handlers {
	return handlers{
		service:      s,
		translations: translations,
		logger:       logger,
		tracer:       platformotel.Tracer(),
	}
}

// handleRoot redirects to the index of the request's preferred language.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	tag, persist := i18nhttp.ResolveTag(r)
	if persist {
		i18nhttp.SetLanguageCookie(w, tag)
	}
	state := filter.Parse(r.URL.Query())
	httpx.WriteRedirect(w, r, state.URL(routepath.Index(tag.String())))
}

// handleLocaleRoot sends a bare canonical locale segment to its index and
// renders the not-found page for any other single-segment path.
func (h handlers) handleLocaleRoot(w http.ResponseWriter, r *http.Request) {
	segment := r.PathValue(routepath.LocaleParam)
	locale, ok := i18nhttp.RouteLocale(segment)
	if !ok || locale != segment {
		h.handleNotFound(w, r)
		return
	}
	state := filter.Parse(r.URL.Query())
	httpx.WriteRedirect(w, r, state.URL(routepath.Index(locale)))
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "listings.index")
	defer span.End()
	r = r.WithContext(ctx)

	locale, ok := h.routeLocale(w, r, span)
	if !ok {
		return
	}
	state := filter.Parse(r.URL.Query())
	span.SetAttributes(
		attribute.String("listings.filter.bedrooms", state.Get(filter.KeyBedrooms)),
		attribute.String("listings.filter.neighborhood", state.Get(filter.KeyNeighborhood)),
		attribute.String("listings.filter.status", state.Get(filter.KeyStatus)),
	)
	if !state.IsCanonical(r.URL.RawQuery) {
		span.SetAttributes(attribute.Bool("listings.redirected", true))
		httpx.WriteRedirect(w, r, state.URL(routepath.Index(locale)))
		return
	}

	h.persistLocale(w, r, locale)
	page, f := h.pageContext(r, locale)
	result := h.service.list(state)
	span.SetAttributes(
		attribute.Int("listings.results.shown", len(result.apartments)),
		attribute.Int("listings.results.total", result.total),
	)
	page.Title = webtemplates.T(page.Loc, "Apartment Listings | General Translation")
	page.Description = webtemplates.T(page.Loc, "Browse apartment rental listings with rent prices, square footage, and availability dates.")
	h.writePage(w, r, span, pagerender.Page{
		Context: page,
		Body:    webtemplates.IndexPage(mapIndexView(f, locale, state, result), page.Loc),
	})
}

func (h handlers) handleApartment(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "listings.apartment")
	defer span.End()
	r = r.WithContext(ctx)

	locale, ok := h.routeLocale(w, r, span)
	if !ok {
		return
	}
	slug := r.PathValue(routepath.SlugParam)
	span.SetAttributes(attribute.String("listings.apartment.slug", slug))

	page, f := h.pageContext(r, locale)
	apt, err := h.service.apartment(slug)
	if err != nil {
		span.SetAttributes(
			attribute.Bool("listings.apartment.found", false),
			attribute.String("listings.error.kind", string(apperrors.KindOf(err))),
		)
		weberror.WriteModuleError(w, r, err, page)
		return
	}
	h.persistLocale(w, r, locale)
	view := mapDetailView(f, locale, apt)
	page.Title = apt.Name + " | " + webtemplates.T(page.Loc, "Apartment Listings")
	page.Description = view.Description
	h.writePage(w, r, span, pagerender.Page{
		Context: page,
		Body:    webtemplates.DetailPage(view, page.Loc),
	})
}

// handleNotFound renders the localized 404 page for every unrouted path.
func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	locale := ""
	if segment, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/"); segment != "" {
		if routeLocale, ok := i18nhttp.RouteLocale(segment); ok {
			locale = routeLocale
		}
	}
	if locale == "" {
		tag, _ := i18nhttp.ResolveTag(r)
		locale = tag.String()
	}
	page, _ := h.pageContext(r, locale)
	weberror.WriteAppError(w, r, http.StatusNotFound, page, "")
}

// routeLocale validates the locale segment. A malformed tag renders the
// not-found page; a non-canonical spelling redirects to the canonical one.
func (h handlers) routeLocale(w http.ResponseWriter, r *http.Request, span trace.Span) (string, bool) {
	segment := r.PathValue(routepath.LocaleParam)
	locale, ok := i18nhttp.RouteLocale(segment)
	if !ok {
		span.SetAttributes(attribute.String("listings.locale.invalid", segment))
		h.handleNotFound(w, r)
		return "", false
	}
	span.SetAttributes(attribute.String("listings.locale", locale))
	if locale != segment {
		target := i18nhttp.LocaleURL(r.URL.Path, r.URL.RawQuery, locale)
		httpx.WriteRedirect(w, r, target)
		return "", false
	}
	return locale, true
}

// persistLocale remembers an explicitly visited supported locale.
func (h handlers) persistLocale(w http.ResponseWriter, r *http.Request, locale string) {
	if !platformi18n.IsSupported(locale) {
		return
	}
	tag := language.MustParse(locale)
	if i18nhttp.HasLanguageCookie(r, tag) {
		return
	}
	i18nhttp.SetLanguageCookie(w, tag)
}

func (h handlers) pageContext(r *http.Request, locale string) (webtemplates.PageContext, format.Formatter) {
	f := format.New(locale, h.translations)
	page := webtemplates.PageContext{
		Lang:        f.Locale(),
		RouteLocale: locale,
		Loc:         h.translations.Localizer(f.Locale()),
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page, f
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, span trace.Span, page pagerender.Page) {
	span.SetAttributes(attribute.String("listings.locale.applied", page.Context.Lang))
	if err := pagerender.WritePage(w, r, page); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		h.logger.ErrorContext(r.Context(), "render page", "path", r.URL.Path, "request_id", httpx.RequestIDFrom(r), "error", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, page.Context, "")
	}
}
