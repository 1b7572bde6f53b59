package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	apperrors "github.com/gt-examples/apartment-listings/internal/services/web/platform/errors"
	webtemplates "github.com/gt-examples/apartment-listings/internal/services/web/templates"
	"golang.org/x/text/message"
)

type mapLocalizer map[string]string

func (m mapLocalizer) Sprintf(key message.Reference, args ...any) string {
	if value, ok := m[key.(string)]; ok {
		return value
	}
	return webtemplates.T(nil, key, args...)
}

func TestWriteModuleErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	loc := mapLocalizer{
		"Page not found": "Página no encontrada",
		"The page you are looking for does not exist.": "La página que buscas no existe.",
	}
	req := httptest.NewRequest(http.MethodGet, "/es-ES/apartment/missing", nil)
	rr := httptest.NewRecorder()
	err := apperrors.EK(apperrors.KindNotFound, "The page you are looking for does not exist.", "apartment missing")
	WriteModuleError(rr, req, err, webtemplates.PageContext{Lang: "es-ES", RouteLocale: "es-ES", Loc: loc})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	doc, parseErr := goquery.NewDocumentFromReader(rr.Body)
	if parseErr != nil {
		t.Fatalf("parse body: %v", parseErr)
	}
	state := doc.Find("#error-state")
	if state.Length() != 1 {
		t.Fatal("body missing error state")
	}
	if got := state.Find("h2").Text(); got != "Página no encontrada" {
		t.Fatalf("heading = %q", got)
	}
	if got := state.Find("p").Text(); got != "La página que buscas no existe." {
		t.Fatalf("message = %q", got)
	}
	if href, _ := state.Find("a").Attr("href"); href != "/es-ES/" {
		t.Fatalf("home link = %q, want %q", href, "/es-ES/")
	}
	if strings.Contains(doc.Find("title").Text(), "apartment missing") {
		t.Fatal("title leaked internal error text")
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/en-US/", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad filter"), webtemplates.PageContext{Lang: "en-US"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad filter") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteAppErrorCoercesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, webtemplates.PageContext{Lang: "en-US"}, "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rr.Body.String(), "Something went wrong") {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(nil, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
	if got := PublicMessage(nil, errors.New("db password wrong")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(plain) = %q", got)
	}
	if got := PublicMessage(nil, apperrors.EK(apperrors.KindNotFound, "Page not found", "x")); got != "Page not found" {
		t.Fatalf("PublicMessage(keyed) = %q", got)
	}
}
