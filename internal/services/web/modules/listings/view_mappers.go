package listings

import (
	"strconv"

	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
	"github.com/gt-examples/apartment-listings/internal/services/listings/filter"
	"github.com/gt-examples/apartment-listings/internal/services/listings/format"
	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
	webtemplates "github.com/gt-examples/apartment-listings/internal/services/web/templates"
)

func mapIndexView(f format.Formatter, locale string, state filter.State, result listing) webtemplates.IndexView {
	indexPath := routepath.Index(locale)
	cards := make([]webtemplates.ApartmentCard, 0, len(result.apartments))
	for _, apt := range result.apartments {
		cards = append(cards, mapApartmentCard(f, locale, apt))
	}
	return webtemplates.IndexView{
		Action:   indexPath,
		Filters:  mapFilterControls(f, indexPath, state),
		Filtered: !state.IsDefault(),
		ClearURL: indexPath,
		Shown:    len(result.apartments),
		Total:    result.total,
		Cards:    cards,
	}
}

func mapFilterControls(f format.Formatter, indexPath string, state filter.State) []webtemplates.FilterControl {
	controls := make([]webtemplates.FilterControl, 0, len(filter.Keys()))
	for _, key := range filter.Keys() {
		current := state.Get(key)
		values := filter.Options(key)
		options := make([]webtemplates.FilterOption, 0, len(values))
		for _, value := range values {
			options = append(options, webtemplates.FilterOption{
				Value:    value,
				Label:    filterOptionLabel(f, key, value),
				URL:      state.With(key, value).URL(indexPath),
				Selected: value == current,
			})
		}
		controls = append(controls, webtemplates.FilterControl{
			Name:    string(key),
			Label:   filterLabel(f, key),
			Options: options,
		})
	}
	return controls
}

func filterLabel(f format.Formatter, key filter.Key) string {
	switch key {
	case filter.KeyBedrooms:
		return f.Text("Bedrooms")
	case filter.KeyNeighborhood:
		return f.Text("Neighborhood")
	case filter.KeyStatus:
		return f.Text("Status")
	default:
		return string(key)
	}
}

func filterOptionLabel(f format.Formatter, key filter.Key, value string) string {
	if value == filter.Any {
		return f.Text("Any")
	}
	switch key {
	case filter.KeyBedrooms:
		n, err := strconv.Atoi(value)
		if err != nil {
			return value
		}
		if n >= 3 {
			return f.Integer(n) + "+"
		}
		return f.Bedrooms(n)
	case filter.KeyNeighborhood:
		return f.Neighborhood(domain.Neighborhood(value))
	case filter.KeyStatus:
		status, ok := domain.ParseStatus(value)
		if !ok {
			return value
		}
		return f.StatusLabel(status)
	default:
		return value
	}
}

func mapStatus(f format.Formatter, status domain.Status) webtemplates.StatusBadge {
	return webtemplates.StatusBadge{Label: f.StatusLabel(status), Tone: f.StatusTone(status)}
}

func mapFeatures(f format.Formatter, features []domain.Feature) []string {
	out := make([]string, 0, len(features))
	for _, feature := range features {
		out = append(out, f.Feature(feature))
	}
	return out
}

// bedroomStat renders a studio as a unit type rather than a zero count.
func bedroomStat(f format.Formatter, apt domain.Apartment, countLabel string) webtemplates.Stat {
	if apt.IsStudio() {
		return webtemplates.Stat{Value: f.Bedrooms(0), Label: f.Text("Type")}
	}
	return webtemplates.Stat{Value: f.Bedrooms(apt.Bedrooms), Label: f.Text(countLabel)}
}

func mapApartmentCard(f format.Formatter, locale string, apt domain.Apartment) webtemplates.ApartmentCard {
	return webtemplates.ApartmentCard{
		Name:         apt.Name,
		URL:          routepath.Apartment(locale, apt.Slug),
		Neighborhood: f.Neighborhood(apt.Neighborhood),
		Status:       mapStatus(f, apt.Status),
		Rent:         f.Rent(apt.MonthlyRent),
		Stats: []webtemplates.Stat{
			bedroomStat(f, apt, "Beds"),
			{Value: f.Number(apt.Bathrooms), Label: f.Text("Baths")},
			{Value: f.Integer(apt.AreaSqft), Label: f.Text("Sq Ft")},
		},
		AvailableFrom: f.Date(apt.AvailableFrom),
		Features:      mapFeatures(f, apt.Features),
		Facets: webtemplates.CardFacets{
			Bedrooms:     apt.Bedrooms,
			Neighborhood: string(apt.Neighborhood),
			Status:       apt.Status.String(),
		},
	}
}

func mapDetailView(f format.Formatter, locale string, apt domain.Apartment) webtemplates.DetailView {
	indexPath := routepath.Index(locale)
	amenities := make([]string, 0, len(apt.Amenities))
	for _, amenity := range apt.Amenities {
		amenities = append(amenities, f.Amenity(amenity))
	}
	return webtemplates.DetailView{
		Name:         apt.Name,
		Neighborhood: f.Neighborhood(apt.Neighborhood),
		Status:       mapStatus(f, apt.Status),
		BackURL:      indexPath,
		Breadcrumbs: []webtemplates.BreadcrumbItem{
			{Label: f.Text("Apartment Listings"), URL: indexPath},
			{Label: apt.Name},
		},
		Stats: []webtemplates.Stat{
			bedroomStat(f, apt, "Bedrooms"),
			{Value: f.Number(apt.Bathrooms), Label: f.Text("Bathrooms")},
			{Value: f.Integer(apt.AreaSqft), Label: f.Text("Sq Ft")},
			{Value: f.Integer(apt.Floor), Label: f.Text("Floor")},
		},
		Description:      f.Text(apt.Description),
		Amenities:        amenities,
		NeighborhoodInfo: f.Text(apt.NeighborhoodInfo),
		Rent:             f.Rent(apt.MonthlyRent),
		Details: []webtemplates.Detail{
			{Label: f.Text("Security deposit"), Value: f.Deposit(apt.Deposit)},
			{Label: f.Text("Available from"), Value: f.Date(apt.AvailableFrom)},
			{Label: f.Text("Year built"), Value: strconv.Itoa(apt.YearBuilt)},
			{Label: f.Text("Lease terms"), Value: f.Text(apt.LeaseTerms)},
			{Label: f.Text("Pet policy"), Value: f.Text(apt.PetPolicy)},
		},
		Features: mapFeatures(f, apt.Features),
	}
}
