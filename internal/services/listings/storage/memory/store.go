// Package memory provides the immutable in-memory apartment catalog.
package memory

import (
	"fmt"

	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage"
)

// Store holds a validated, read-only apartment catalog.
type Store struct {
	records []domain.Apartment
	bySlug  map[string]int
}

var _ storage.Catalog = (*Store)(nil)

// New validates records and builds a store that preserves their order.
func New(records []domain.Apartment) (*Store, error) {
	store := &Store{
		records: make([]domain.Apartment, 0, len(records)),
		bySlug:  make(map[string]int, len(records)),
	}
	ids := make(map[int]struct{}, len(records))
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, err
		}
		if _, exists := store.bySlug[record.Slug]; exists {
			return nil, fmt.Errorf("slug %q: %w", record.Slug, storage.ErrAlreadyExists)
		}
		if _, exists := ids[record.ID]; exists {
			return nil, fmt.Errorf("id %d: %w", record.ID, storage.ErrAlreadyExists)
		}
		ids[record.ID] = struct{}{}
		store.bySlug[record.Slug] = len(store.records)
		store.records = append(store.records, record.Clone())
	}
	return store, nil
}

// NewSeeded returns a store holding the sample catalog.
func NewSeeded() (*Store, error) {
	return New(Seed())
}

// All returns copies of every apartment in insertion order.
func (s *Store) All() []domain.Apartment {
	if s == nil {
		return nil
	}
	out := make([]domain.Apartment, len(s.records))
	for i, record := range s.records {
		out[i] = record.Clone()
	}
	return out
}

// GetBySlug returns a copy of the apartment with slug.
func (s *Store) GetBySlug(slug string) (domain.Apartment, error) {
	if s == nil {
		return domain.Apartment{}, storage.ErrNotFound
	}
	idx, ok := s.bySlug[slug]
	if !ok {
		return domain.Apartment{}, storage.ErrNotFound
	}
	return s.records[idx].Clone(), nil
}

// Slugs returns every slug in insertion order.
func (s *Store) Slugs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.records))
	for i, record := range s.records {
		out[i] = record.Slug
	}
	return out
}
