// Package storage defines read contracts for the apartment catalog.
package storage

import (
	"errors"

	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
)

var (
	// ErrNotFound indicates a requested apartment is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record was declared twice.
	ErrAlreadyExists = errors.New("record already exists")
)

// Catalog is a read-only apartment catalog.
type Catalog interface {
	// All returns every apartment in insertion order.
	All() []domain.Apartment
	// GetBySlug returns the apartment with slug or ErrNotFound.
	GetBySlug(slug string) (domain.Apartment, error)
	// Slugs returns every slug in insertion order.
	Slugs() []string
}
