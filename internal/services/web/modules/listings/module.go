// Package listings serves the apartment index and detail pages.
package listings

import (
	"errors"
	"log/slog"
	"net/http"

	module "github.com/gt-examples/apartment-listings/internal/services/web/module"
	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
)

// Module mounts the locale-prefixed listing pages.
type Module struct {
	deps module.Dependencies
}

// New returns a listings module over deps.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "listings"
}

// Mount wires the listing routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Catalog == nil {
		return module.Mount{}, errors.New("listings: catalog is required")
	}
	if m.deps.Translations == nil {
		return module.Mount{}, errors.New("listings: translations are required")
	}
	logger := m.deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Catalog), m.deps.Translations, logger))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
