// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/gt-examples/apartment-listings/internal/services/web/platform/httpx"
	webtemplates "github.com/gt-examples/apartment-listings/internal/services/web/templates"
)

// Page describes one full-document response.
type Page struct {
	Context    webtemplates.PageContext
	StatusCode int
	Body       templ.Component
}

// WritePage renders page inside the shared layout. Nothing is written when rendering fails.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(page.Context).Render(ctx, &buf); err != nil {
		return err
	}
	_ = httpx.WriteHTML(w, statusCode, buf.String())
	return nil
}
