// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/gt-examples/apartment-listings/internal/services/web/platform/errors"
	"github.com/gt-examples/apartment-listings/internal/services/web/platform/pagerender"
	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
	webtemplates "github.com/gt-examples/apartment-listings/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(webtemplates.T(loc, key)); localized != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for page.
//
// The page's language links point at the index so switching language from an
// error page lands on a real page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, page webtemplates.PageContext, message string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page.Title = webtemplates.ErrorPageTitle(statusCode, page.Loc)
	if page.Description == "" {
		page.Description = page.Title
	}
	home := routepath.Index(page.RouteLocale)
	if page.RouteLocale == "" {
		home = routepath.Index(page.Lang)
	}
	page.CurrentPath = home
	page.CurrentQuery = ""

	err := pagerender.WritePage(w, r, pagerender.Page{
		Context:    page,
		StatusCode: statusCode,
		Body:       webtemplates.ErrorState(statusCode, message, home, page.Loc),
	})
	if err != nil {
		slog.Default().Error("render error page", "status", statusCode, "error", err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response for err.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, page webtemplates.PageContext) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		message := ""
		if apperrors.LocalizationKey(err) != "" {
			message = PublicMessage(page.Loc, err)
		}
		WriteAppError(w, r, statusCode, page, message)
		return
	}
	http.Error(w, PublicMessage(page.Loc, err), statusCode)
}
