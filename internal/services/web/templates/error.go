package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return errorHeading(statusCode, loc) + " | " + T(loc, "Apartment Listings")
}

func errorHeading(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "Page not found")
	}
	return T(loc, "Something went wrong")
}

func errorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "The page you are looking for does not exist.")
	}
	return T(loc, "An unexpected error occurred.")
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorState renders the body of an error page with a link back to the index.
func ErrorState(statusCode int, message string, homeURL string, loc Localizer) templ.Component {
	if message == "" {
		message = errorMessage(statusCode, loc)
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("section", a("id", "error-state"), a("class", "error-state"), a("data-status", strconv.Itoa(normalizeErrorStatus(statusCode))))
		h.element("h2", errorHeading(statusCode, loc))
		h.element("p", message)
		h.element("a", T(loc, "Back to all listings"), a("href", homeURL), a("class", "button"))
		h.close("section")
		return h.err
	})
}
