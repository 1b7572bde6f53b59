package listings

import (
	"errors"

	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
	"github.com/gt-examples/apartment-listings/internal/services/listings/filter"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage"
	apperrors "github.com/gt-examples/apartment-listings/internal/services/web/platform/errors"
)

// service reads the catalog on behalf of the handlers.
type service struct {
	catalog storage.Catalog
}

func newService(catalog storage.Catalog) service {
	return service{catalog: catalog}
}

// listing is the filtered index result.
type listing struct {
	apartments []domain.Apartment
	total      int
}

func (s service) list(state filter.State) listing {
	all := s.catalog.All()
	return listing{apartments: filter.Apply(all, state), total: len(all)}
}

func (s service) apartment(slug string) (domain.Apartment, error) {
	apt, err := s.catalog.GetBySlug(slug)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Apartment{}, apperrors.EK(apperrors.KindNotFound, "The page you are looking for does not exist.", "apartment "+slug+" not found")
	}
	if err != nil {
		return domain.Apartment{}, apperrors.Wrap(err, "get apartment "+slug)
	}
	return apt, nil
}
