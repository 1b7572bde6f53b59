package listings

import (
	"net/http"

	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.RootPattern, h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePattern, h.handleLocaleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.IndexPattern, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ApartmentPattern, h.handleApartment)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
