package domain

import "strings"

// Status is the leasing state of a listing.
type Status uint8

// Listing states. The zero value is not a valid status.
const (
	StatusUnspecified Status = iota
	StatusAvailable
	StatusPending
	StatusLeased
)

// Statuses returns every valid status in display order.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusPending, StatusLeased}
}

// ParseStatus parses the canonical lowercase status name.
func ParseStatus(value string) (Status, bool) {
	switch strings.TrimSpace(value) {
	case "available":
		return StatusAvailable, true
	case "pending":
		return StatusPending, true
	case "leased":
		return StatusLeased, true
	default:
		return StatusUnspecified, false
	}
}

// String returns the canonical status name used in query strings.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusPending:
		return "pending"
	case StatusLeased:
		return "leased"
	default:
		return "unspecified"
	}
}

// Valid reports whether s is one of the declared listing states.
func (s Status) Valid() bool {
	return s >= StatusAvailable && s <= StatusLeased
}

// Neighborhood is one of the closed set of areas listings belong to.
type Neighborhood string

// Known neighborhoods. Values double as canonical English labels.
const (
	Downtown   Neighborhood = "Downtown"
	Waterfront Neighborhood = "Waterfront"
	Midtown    Neighborhood = "Midtown"
	Suburbs    Neighborhood = "Suburbs"
	Eastside   Neighborhood = "Eastside"
	Northgate  Neighborhood = "Northgate"
)

// Neighborhoods returns every neighborhood in display order.
func Neighborhoods() []Neighborhood {
	return []Neighborhood{Downtown, Waterfront, Midtown, Suburbs, Eastside, Northgate}
}

// ParseNeighborhood matches value against the known neighborhoods, case-sensitively.
func ParseNeighborhood(value string) (Neighborhood, bool) {
	for _, n := range Neighborhoods() {
		if string(n) == value {
			return n, true
		}
	}
	return "", false
}

// Valid reports whether n is a known neighborhood.
func (n Neighborhood) Valid() bool {
	_, ok := ParseNeighborhood(string(n))
	return ok
}

// Feature is a short tag drawn from the closed feature catalog.
type Feature string

// Feature catalog. Values double as canonical English labels.
const (
	FeatureInUnitLaundry     Feature = "In-unit laundry"
	FeatureBalcony           Feature = "Balcony"
	FeatureParking           Feature = "Parking"
	FeatureGymAccess         Feature = "Gym access"
	FeatureRooftopDeck       Feature = "Rooftop deck"
	FeatureUtilitiesIncluded Feature = "Utilities included"
	FeaturePetFriendly       Feature = "Pet friendly"
	FeatureGarage            Feature = "Garage"
	FeatureBackyard          Feature = "Backyard"
	FeatureFireplace         Feature = "Fireplace"
	FeaturePool              Feature = "Pool"
	FeatureConcierge         Feature = "Concierge"
	FeatureStorageUnit       Feature = "Storage unit"
)

// Features returns the full feature catalog.
func Features() []Feature {
	return []Feature{
		FeatureInUnitLaundry,
		FeatureBalcony,
		FeatureParking,
		FeatureGymAccess,
		FeatureRooftopDeck,
		FeatureUtilitiesIncluded,
		FeaturePetFriendly,
		FeatureGarage,
		FeatureBackyard,
		FeatureFireplace,
		FeaturePool,
		FeatureConcierge,
		FeatureStorageUnit,
	}
}

// Valid reports whether f belongs to the feature catalog.
func (f Feature) Valid() bool {
	for _, known := range Features() {
		if known == f {
			return true
		}
	}
	return false
}
