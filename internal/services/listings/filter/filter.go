// Package filter derives listing filter state from navigation queries and
// narrows the apartment catalog with it.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
)

// Any is the value of a filter that does not narrow the catalog.
const Any = "any"

// Key names one filter dimension and doubles as its query parameter.
type Key string

const (
	KeyBedrooms     Key = "bedrooms"
	KeyNeighborhood Key = "neighborhood"
	KeyStatus       Key = "status"
)

// bedroomsAtLeast is the catch-all bucket: "3" matches three or more bedrooms.
const bedroomsAtLeast = "3"

// Keys returns the filter keys in serialization order.
func Keys() []Key {
	return []Key{KeyBedrooms, KeyNeighborhood, KeyStatus}
}

// State is one filter triple. Every field is either Any or a canonical value.
type State struct {
	Bedrooms     string
	Neighborhood string
	Status       string
}

// Default returns the state that matches every apartment.
func Default() State {
	return State{Bedrooms: Any, Neighborhood: Any, Status: Any}
}

// Parse reads a filter state from query values. Missing and invalid values become Any.
func Parse(values url.Values) State {
	state := Default()
	for _, key := range Keys() {
		state = state.With(key, values.Get(string(key)))
	}
	return state
}

// Get returns the current value for key.
func (s State) Get(key Key) string {
	switch key {
	case KeyBedrooms:
		return orAny(s.Bedrooms)
	case KeyNeighborhood:
		return orAny(s.Neighborhood)
	case KeyStatus:
		return orAny(s.Status)
	default:
		return Any
	}
}

// With returns a copy of s with key set to value. Invalid values become Any.
func (s State) With(key Key, value string) State {
	value = normalize(key, value)
	switch key {
	case KeyBedrooms:
		s.Bedrooms = value
	case KeyNeighborhood:
		s.Neighborhood = value
	case KeyStatus:
		s.Status = value
	}
	return s
}

// IsDefault reports whether no filter narrows the catalog.
func (s State) IsDefault() bool {
	for _, key := range Keys() {
		if s.Get(key) != Any {
			return false
		}
	}
	return true
}

// Encode serializes the non-Any filters in Keys order.
func (s State) Encode() string {
	var b strings.Builder
	for _, key := range Keys() {
		value := s.Get(key)
		if value == Any {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(string(key)))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

// URL returns path followed by the encoded query, if any.
func (s State) URL(path string) string {
	if query := s.Encode(); query != "" {
		return path + "?" + query
	}
	return path
}

// IsCanonical reports whether raw already carries exactly the encoding of s.
func (s State) IsCanonical(rawQuery string) bool {
	return rawQuery == s.Encode()
}

// Matches reports whether apt satisfies all three filters.
func (s State) Matches(apt domain.Apartment) bool {
	return s.matchesBedrooms(apt.Bedrooms) &&
		s.matchesNeighborhood(apt.Neighborhood) &&
		s.matchesStatus(apt.Status)
}

func (s State) matchesBedrooms(count int) bool {
	value := s.Get(KeyBedrooms)
	if value == Any {
		return true
	}
	if value == bedroomsAtLeast {
		return count >= 3
	}
	want, err := strconv.Atoi(value)
	if err != nil {
		return true
	}
	return count == want
}

func (s State) matchesNeighborhood(n domain.Neighborhood) bool {
	value := s.Get(KeyNeighborhood)
	return value == Any || value == string(n)
}

func (s State) matchesStatus(status domain.Status) bool {
	value := s.Get(KeyStatus)
	return value == Any || value == status.String()
}

// Apply returns the apartments matching s, in their original order.
func Apply(apartments []domain.Apartment, s State) []domain.Apartment {
	out := make([]domain.Apartment, 0, len(apartments))
	for _, apt := range apartments {
		if s.Matches(apt) {
			out = append(out, apt)
		}
	}
	return out
}

// Options returns the selectable values for key, Any first.
func Options(key Key) []string {
	switch key {
	case KeyBedrooms:
		return []string{Any, "0", "1", "2", bedroomsAtLeast}
	case KeyNeighborhood:
		out := []string{Any}
		for _, n := range domain.Neighborhoods() {
			out = append(out, string(n))
		}
		return out
	case KeyStatus:
		out := []string{Any}
		for _, status := range domain.Statuses() {
			out = append(out, status.String())
		}
		return out
	default:
		return []string{Any}
	}
}

func normalize(key Key, value string) string {
	value = strings.TrimSpace(value)
	for _, option := range Options(key) {
		if option == value {
			return value
		}
	}
	return Any
}

func orAny(value string) string {
	if value == "" {
		return Any
	}
	return value
}
