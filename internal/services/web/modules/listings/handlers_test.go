package listings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/gt-examples/apartment-listings/internal/platform/i18n/catalog"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage/memory"
	"github.com/gt-examples/apartment-listings/internal/services/shared/i18nhttp"
	module "github.com/gt-examples/apartment-listings/internal/services/web/module"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	store, err := memory.NewSeeded()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load translations: %v", err)
	}
	mount, err := New(module.Dependencies{Catalog: store, Translations: bundle}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func serve(t *testing.T, h http.Handler, target string, prepare ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, fn := range prepare {
		fn(req)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func parse(t *testing.T, rr *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func cardNames(doc *goquery.Document) []string {
	var names []string
	doc.Find("article.card .card-title").Each(func(_ int, s *goquery.Selection) {
		names = append(names, strings.TrimSpace(s.Text()))
	})
	return names
}

func TestRootRedirectsToPreferredLocale(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := serve(t, h, "/", func(r *http.Request) {
		r.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.5")
	})
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/fr-FR/" {
		t.Fatalf("location = %q, want %q", got, "/fr-FR/")
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("Accept-Language redirect should not set a cookie")
	}
}

func TestRootRedirectPersistsLangParam(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/?lang=es")
	if got := rr.Header().Get("Location"); got != "/es-ES/" {
		t.Fatalf("location = %q, want %q", got, "/es-ES/")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != i18nhttp.LangCookieName || cookies[0].Value != "es-ES" {
		t.Fatalf("cookies = %v, want %s=es-ES", cookies, i18nhttp.LangCookieName)
	}
}

func TestRootRedirectKeepsFilterQuery(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/?status=leased&bedrooms=9&lang=en")
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/en-US/?status=leased" {
		t.Fatalf("location = %q, want %q", got, "/en-US/?status=leased")
	}
}

func TestBareLocaleSegmentRedirectsToIndex(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := serve(t, h, "/en-US")
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/en-US/" {
		t.Fatalf("location = %q, want %q", got, "/en-US/")
	}
	if got := serve(t, h, "/fr-FR?bedrooms=3").Header().Get("Location"); got != "/fr-FR/?bedrooms=3" {
		t.Fatalf("location = %q, want %q", got, "/fr-FR/?bedrooms=3")
	}

	for _, target := range []string{"/es-mx", "/robots.txt"} {
		rr := serve(t, h, target)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
	}
}

func TestIndexRendersEveryApartment(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/en-US/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parse(t, rr)
	want := []string{"Sunset Terrace", "Harbor View Loft", "Elm Street Studio", "Maple Court", "Pine Ridge Flat", "Birch Lane Apartment"}
	if got := cardNames(doc); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("cards = %v, want %v", got, want)
	}
	if got := strings.TrimSpace(doc.Find(".result-count").Text()); got != "Showing 6 of 6 apartments" {
		t.Fatalf("result count = %q", got)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "en-US" {
		t.Fatalf("html lang = %q, want en-US", lang)
	}
	if got := doc.Find("title").Text(); got != "Apartment Listings | General Translation" {
		t.Fatalf("title = %q", got)
	}
	first := doc.Find("article.card").First()
	if got := first.Find(".rent").Text(); got != "$2,400.00 / month" {
		t.Fatalf("rent = %q", got)
	}
	if got := first.Find(".available-date").Text(); got != "Mar 1, 2026" {
		t.Fatalf("available date = %q", got)
	}
	if got := first.Find(".badge").Text(); got != "Available" {
		t.Fatalf("badge = %q", got)
	}
}

func TestIndexLocalizesCopyAndFormatting(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/es-ES/?status=leased")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parse(t, rr)
	if got := cardNames(doc); len(got) != 1 || got[0] != "Pine Ridge Flat" {
		t.Fatalf("cards = %v, want [Pine Ridge Flat]", got)
	}
	card := doc.Find("article.card").First()
	if got := card.Find(".badge").Text(); got != "Alquilado" {
		t.Fatalf("badge = %q, want Alquilado", got)
	}
	if got := card.Find(".card-neighborhood").Text(); got != "Zona este" {
		t.Fatalf("neighborhood = %q, want Zona este", got)
	}
	if got := card.Find(".rent").Text(); !strings.HasSuffix(got, "US$ / mes") {
		t.Fatalf("rent = %q", got)
	}
	if got := strings.TrimSpace(doc.Find(".result-count").Text()); got != "Mostrando 1 de 6 apartamentos" {
		t.Fatalf("result count = %q", got)
	}
	if og, _ := doc.Find(`meta[property="og:locale"]`).Attr("content"); og != "es_ES" {
		t.Fatalf("og:locale = %q, want es_ES", og)
	}
}

func TestIndexFiltersBedroomCatchAll(t *testing.T) {
	t.Parallel()

	doc := parse(t, serve(t, newTestHandler(t), "/en-US/?bedrooms=3"))
	if got := cardNames(doc); len(got) != 1 || got[0] != "Maple Court" {
		t.Fatalf("cards = %v, want [Maple Court]", got)
	}
}

func TestIndexRendersEmptyState(t *testing.T) {
	t.Parallel()

	doc := parse(t, serve(t, newTestHandler(t), "/en-US/?bedrooms=0&status=leased"))
	if got := doc.Find("article.card").Length(); got != 0 {
		t.Fatalf("cards = %d, want 0", got)
	}
	empty := doc.Find(".empty-state:not([hidden])")
	if empty.Length() != 1 {
		t.Fatal("missing empty state")
	}
	if href, _ := empty.Find("a").Attr("href"); href != "/en-US/" {
		t.Fatalf("clear link = %q, want /en-US/", href)
	}
	if got := strings.TrimSpace(doc.Find(".result-count").Text()); got != "Showing 0 of 6 apartments" {
		t.Fatalf("result count = %q", got)
	}
}

func TestIndexRedirectsNonCanonicalQueries(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	tests := []struct {
		target string
		want   string
	}{
		{target: "/en-US/?bedrooms=any&status=leased", want: "/en-US/?status=leased"},
		{target: "/en-US/?status=leased&bedrooms=2", want: "/en-US/?bedrooms=2&status=leased"},
		{target: "/en-US/?bedrooms=nine", want: "/en-US/"},
		{target: "/de-DE/?neighborhood=Downtown&utm=x", want: "/de-DE/?neighborhood=Downtown"},
	}
	for _, tc := range tests {
		rr := serve(t, h, tc.target)
		if rr.Code != http.StatusFound {
			t.Fatalf("%s status = %d, want %d", tc.target, rr.Code, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != tc.want {
			t.Fatalf("%s location = %q, want %q", tc.target, got, tc.want)
		}
	}
}

func TestIndexFilterOptionsLinkToCanonicalStates(t *testing.T) {
	t.Parallel()

	doc := parse(t, serve(t, newTestHandler(t), "/en-US/?status=leased"))
	option := doc.Find(`select[name="neighborhood"] option[value="Downtown"]`)
	if href, _ := option.Attr("data-href"); href != "/en-US/?neighborhood=Downtown&status=leased" {
		t.Fatalf("neighborhood option href = %q", href)
	}
	anyStatus := doc.Find(`select[name="status"] option[value="any"]`)
	if href, _ := anyStatus.Attr("data-href"); href != "/en-US/" {
		t.Fatalf("status any href = %q, want /en-US/", href)
	}
	if _, selected := doc.Find(`select[name="status"] option[value="leased"]`).Attr("selected"); !selected {
		t.Fatal("leased option should be selected")
	}
	if got := doc.Find(`select[name="bedrooms"] option[value="3"]`).Text(); got != "3+" {
		t.Fatalf("bedrooms bucket label = %q, want 3+", got)
	}
	if got := doc.Find(`select[name="bedrooms"] option[value="0"]`).Text(); got != "Studio" {
		t.Fatalf("studio label = %q, want Studio", got)
	}
	if action, _ := doc.Find("form.filters").Attr("action"); action != "/en-US/" {
		t.Fatalf("form action = %q", action)
	}
}

func TestLocaleSelectorKeepsPageAndQuery(t *testing.T) {
	t.Parallel()

	doc := parse(t, serve(t, newTestHandler(t), "/es-ES/?status=leased"))
	fr := doc.Find(`.locale-selector a[data-locale="fr-FR"]`)
	if href, _ := fr.Attr("href"); href != "/fr-FR/?status=leased" {
		t.Fatalf("fr-FR link = %q", href)
	}
	if current, _ := doc.Find(`.locale-selector a[data-locale="es-ES"]`).Attr("aria-current"); current != "true" {
		t.Fatalf("es-ES aria-current = %q, want true", current)
	}
	if got := doc.Find(".locale-selector a").Length(); got != 5 {
		t.Fatalf("locale links = %d, want 5", got)
	}
	if got := doc.Find(`link[rel="alternate"]`).Length(); got != 5 {
		t.Fatalf("alternate links = %d, want 5", got)
	}
}

func TestVisitingSupportedLocalePersistsCookie(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := serve(t, h, "/de-DE/")
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "de-DE" {
		t.Fatalf("cookies = %v, want de-DE", cookies)
	}

	rr = serve(t, h, "/de-DE/", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: i18nhttp.LangCookieName, Value: "de-DE"})
	})
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("matching cookie should not be rewritten")
	}

	rr = serve(t, h, "/pt-BR/")
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("unsupported locale should not be persisted")
	}
}

func TestUnsupportedLocaleRendersWithFallbackRules(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/pt-BR/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parse(t, rr)
	if lang, _ := doc.Find("html").Attr("lang"); lang != "en-US" {
		t.Fatalf("html lang = %q, want en-US", lang)
	}
	if href, _ := doc.Find("article.card .card-title a").First().Attr("href"); href != "/pt-BR/apartment/sunset-terrace" {
		t.Fatalf("card link = %q", href)
	}

	rr = serve(t, newTestHandler(t), "/es-MX/")
	if lang, _ := parse(t, rr).Find("html").Attr("lang"); lang != "es-ES" {
		t.Fatalf("es-MX html lang = %q, want es-ES", lang)
	}
}

func TestNonCanonicalLocaleRedirects(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/es-mx/apartment/maple-court?x=1")
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/es-MX/apartment/maple-court?x=1" {
		t.Fatalf("location = %q", got)
	}
}

func TestMalformedLocaleIsNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/not_a_locale!/")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if parse(t, rr).Find("#error-state").Length() != 1 {
		t.Fatal("missing error state")
	}
}

func TestDetailRendersApartment(t *testing.T) {
	t.Parallel()

	rr := serve(t, newTestHandler(t), "/en-US/apartment/pine-ridge-flat")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parse(t, rr)
	if got := doc.Find(".detail-title h2").Text(); got != "Pine Ridge Flat" {
		t.Fatalf("name = %q", got)
	}
	if got := doc.Find("title").Text(); got != "Pine Ridge Flat | Apartment Listings" {
		t.Fatalf("title = %q", got)
	}
	details := map[string]string{}
	doc.Find(".price-detail").Each(func(_ int, s *goquery.Selection) {
		details[s.Find("dt").Text()] = s.Find("dd").Text()
	})
	if got := details["Security deposit"]; got != "$5,500.00" {
		t.Fatalf("deposit = %q, want $5,500.00", got)
	}
	if got := details["Year built"]; got != "2023" {
		t.Fatalf("year built = %q, want 2023", got)
	}
	if got := details["Available from"]; got != "Mar 10, 2026" {
		t.Fatalf("available from = %q", got)
	}
	if got := doc.Find(".price-card .rent").Text(); got != "$2,750.00 / month" {
		t.Fatalf("rent = %q", got)
	}
	if got := doc.Find(".amenity-list li").Length(); got == 0 {
		t.Fatal("missing amenities")
	}
	crumbs := doc.Find(".breadcrumbs li")
	if crumbs.Length() != 2 {
		t.Fatalf("breadcrumbs = %d, want 2", crumbs.Length())
	}
	if href, _ := crumbs.First().Find("a").Attr("href"); href != "/en-US/" {
		t.Fatalf("breadcrumb home = %q", href)
	}
	if href, _ := doc.Find("a.back-link").Attr("href"); href != "/en-US/" {
		t.Fatalf("back link = %q", href)
	}
	if doc.Find(".contact-card button").Length() != 2 {
		t.Fatal("contact card should offer two actions")
	}
	if desc, _ := doc.Find(`meta[name="description"]`).Attr("content"); desc == "" {
		t.Fatal("missing meta description")
	}
}

func TestDetailRendersStudioAsType(t *testing.T) {
	t.Parallel()

	doc := parse(t, serve(t, newTestHandler(t), "/es-ES/apartment/elm-street-studio"))
	stat := doc.Find(".detail-main .stat").First()
	if got := stat.Find("dd").Text(); got != "Estudio" {
		t.Fatalf("studio value = %q, want Estudio", got)
	}
	if got := stat.Find("dt").Text(); got != "Tipo" {
		t.Fatalf("studio label = %q, want Tipo", got)
	}
}

func TestDetailUnknownSlugIsNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	for _, target := range []string{"/fr-FR/apartment/missing", "/fr-FR/apartment/Sunset-Terrace"} {
		rr := serve(t, h, target)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s status = %d, want %d", target, rr.Code, http.StatusNotFound)
		}
		doc := parse(t, rr)
		if got := doc.Find("#error-state h2").Text(); got != "Page introuvable" {
			t.Fatalf("%s heading = %q", target, got)
		}
		if href, _ := doc.Find("#error-state a").Attr("href"); href != "/fr-FR/" {
			t.Fatalf("%s home link = %q", target, href)
		}
	}
}

func TestUnroutedPathsRenderLocalizedNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := serve(t, h, "/es-ES/nothing/here")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := parse(t, rr).Find("#error-state h2").Text(); got != "Página no encontrada" {
		t.Fatalf("heading = %q", got)
	}

	rr = serve(t, h, "/favicon.ico", func(r *http.Request) {
		r.Header.Set("Accept-Language", "ja")
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if lang, _ := parse(t, rr).Find("html").Attr("lang"); lang != "ja-JP" {
		t.Fatalf("html lang = %q, want ja-JP", lang)
	}
}
