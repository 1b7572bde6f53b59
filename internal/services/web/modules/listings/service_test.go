package listings

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
	"github.com/gt-examples/apartment-listings/internal/services/listings/filter"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage/memory"
	apperrors "github.com/gt-examples/apartment-listings/internal/services/web/platform/errors"
)

type failingCatalog struct {
	err error
}

func (f failingCatalog) All() []domain.Apartment { return nil }

func (f failingCatalog) GetBySlug(string) (domain.Apartment, error) {
	return domain.Apartment{}, f.err
}

func (f failingCatalog) Slugs() []string { return nil }

func TestServiceApartmentMapsMissingSlugToNotFound(t *testing.T) {
	t.Parallel()

	store, err := memory.NewSeeded()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	svc := newService(store)

	apt, err := svc.apartment("maple-court")
	if err != nil {
		t.Fatalf("apartment(maple-court) error = %v", err)
	}
	if apt.Slug != "maple-court" {
		t.Fatalf("slug = %q, want maple-court", apt.Slug)
	}

	_, err = svc.apartment("nope")
	if got := apperrors.KindOf(err); got != apperrors.KindNotFound {
		t.Fatalf("kind = %q, want %q", got, apperrors.KindNotFound)
	}
	if got := apperrors.HTTPStatus(err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, http.StatusNotFound)
	}
	if apperrors.LocalizationKey(err) == "" {
		t.Fatal("expected localization key for missing apartment")
	}
}

func TestServiceApartmentTreatsOtherCatalogErrorsAsInternal(t *testing.T) {
	t.Parallel()

	cause := errors.New("catalog offline")
	_, err := newService(failingCatalog{err: cause}).apartment("maple-court")
	if !errors.Is(err, cause) {
		t.Fatalf("error = %v, want wrapped %v", err, cause)
	}
	if got := apperrors.KindOf(err); got != apperrors.KindUnknown {
		t.Fatalf("kind = %q, want %q", got, apperrors.KindUnknown)
	}
	if got := apperrors.HTTPStatus(err); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestServiceListReportsCatalogTotal(t *testing.T) {
	t.Parallel()

	store, err := memory.NewSeeded()
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	got := newService(store).list(filter.Default().With(filter.KeyStatus, "leased"))
	if got.total != 6 {
		t.Fatalf("total = %d, want 6", got.total)
	}
	if len(got.apartments) != 1 || got.apartments[0].Slug != "pine-ridge-flat" {
		t.Fatalf("apartments = %v, want [pine-ridge-flat]", got.apartments)
	}
}
