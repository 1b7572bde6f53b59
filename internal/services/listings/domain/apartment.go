// Package domain defines the apartment listing records rendered by the site.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Apartment is one immutable listing record.
//
// Slug is the only identifier exposed in URLs; ID is sequential and only
// meaningful inside one catalog.
type Apartment struct {
	ID               int
	Slug             string
	Name             string
	Neighborhood     Neighborhood
	Bedrooms         int
	Bathrooms        float64
	AreaSqft         int
	MonthlyRent      int
	AvailableFrom    Date
	Features         []Feature
	Status           Status
	Description      string
	Amenities        []string
	NeighborhoodInfo string
	YearBuilt        int
	Floor            int
	Deposit          int
	PetPolicy        string
	LeaseTerms       string
}

// IsStudio reports whether the unit has no separate bedroom.
func (a Apartment) IsStudio() bool {
	return a.Bedrooms == 0
}

// Clone returns a copy that shares no slices with a.
func (a Apartment) Clone() Apartment {
	out := a
	if a.Features != nil {
		out.Features = append([]Feature(nil), a.Features...)
	}
	if a.Amenities != nil {
		out.Amenities = append([]string(nil), a.Amenities...)
	}
	return out
}

// Validate checks the record invariants required before a record can join a catalog.
func (a Apartment) Validate() error {
	var errs []error
	if a.ID <= 0 {
		errs = append(errs, fmt.Errorf("id must be positive"))
	}
	if strings.TrimSpace(a.Slug) == "" {
		errs = append(errs, fmt.Errorf("slug is required"))
	}
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if !a.Neighborhood.Valid() {
		errs = append(errs, fmt.Errorf("unknown neighborhood %q", a.Neighborhood))
	}
	if !a.Status.Valid() {
		errs = append(errs, fmt.Errorf("unknown status %d", a.Status))
	}
	if a.Bedrooms < 0 {
		errs = append(errs, fmt.Errorf("bedrooms must not be negative"))
	}
	if a.Bathrooms <= 0 {
		errs = append(errs, fmt.Errorf("bathrooms must be positive"))
	}
	if a.AreaSqft <= 0 {
		errs = append(errs, fmt.Errorf("area must be positive"))
	}
	if a.MonthlyRent <= 0 {
		errs = append(errs, fmt.Errorf("monthly rent must be positive"))
	}
	if a.Deposit < 0 {
		errs = append(errs, fmt.Errorf("deposit must not be negative"))
	}
	if a.AvailableFrom.IsZero() {
		errs = append(errs, fmt.Errorf("available from date is required"))
	}
	for _, feature := range a.Features {
		if !feature.Valid() {
			errs = append(errs, fmt.Errorf("unknown feature %q", feature))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("apartment %q: %w", a.Slug, errors.Join(errs...))
}
