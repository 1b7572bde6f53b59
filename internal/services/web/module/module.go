// Package module defines the feature contract used by web composition.
package module

import (
	"log/slog"
	"net/http"

	"github.com/gt-examples/apartment-listings/internal/platform/i18n/catalog"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage"
)

// Translations resolves catalog copy for rendered pages.
type Translations interface {
	Translate(locale string, canonical string) string
	Localizer(locale string) catalog.Localizer
}

// Dependencies carries the shared services modules mount against.
type Dependencies struct {
	Catalog      storage.Catalog
	Translations Translations
	Logger       *slog.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
