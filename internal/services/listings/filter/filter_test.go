package filter

import (
	"net/url"
	"testing"

	"github.com/gt-examples/apartment-listings/internal/services/listings/domain"
	"github.com/gt-examples/apartment-listings/internal/services/listings/storage/memory"
)

func names(apartments []domain.Apartment) []string {
	out := make([]string, len(apartments))
	for i, apt := range apartments {
		out[i] = apt.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseTreatsMissingAndInvalidAsAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  State
	}{
		{name: "empty", query: "", want: Default()},
		{name: "explicit any", query: "bedrooms=any&neighborhood=any&status=any", want: Default()},
		{name: "unknown bedrooms", query: "bedrooms=4", want: Default()},
		{name: "lowercase neighborhood", query: "neighborhood=downtown", want: Default()},
		{name: "capitalized status", query: "status=Leased", want: Default()},
		{
			name:  "valid triple",
			query: "bedrooms=0&neighborhood=Midtown&status=pending",
			want:  State{Bedrooms: "0", Neighborhood: "Midtown", Status: "pending"},
		},
		{
			name:  "mixed",
			query: "bedrooms=2&neighborhood=Atlantis&status=available",
			want:  State{Bedrooms: "2", Neighborhood: Any, Status: "available"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			if got := Parse(values); got != tc.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.query, got, tc.want)
			}
		})
	}
}

func TestEncodeUsesFixedKeyOrderAndOmitsAny(t *testing.T) {
	t.Parallel()

	state := Default().
		With(KeyStatus, "leased").
		With(KeyNeighborhood, "Eastside").
		With(KeyBedrooms, "2")
	if got, want := state.Encode(), "bedrooms=2&neighborhood=Eastside&status=leased"; got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}

	state = state.With(KeyNeighborhood, Any)
	if got, want := state.Encode(), "bedrooms=2&status=leased"; got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}

	if got := Default().Encode(); got != "" {
		t.Fatalf("Default().Encode() = %q, want empty", got)
	}
}

func TestWithOverridesOnlyTheChangedKey(t *testing.T) {
	t.Parallel()

	start := State{Bedrooms: "1", Neighborhood: "Northgate", Status: "available"}
	next := start.With(KeyBedrooms, "3")
	if next.Bedrooms != "3" || next.Neighborhood != "Northgate" || next.Status != "available" {
		t.Fatalf("With() = %+v", next)
	}
	if start.Bedrooms != "1" {
		t.Fatalf("With() mutated receiver: %+v", start)
	}
	if got := start.With(KeyStatus, "sold").Status; got != Any {
		t.Fatalf("With(status, sold).Status = %q, want %q", got, Any)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, bedrooms := range Options(KeyBedrooms) {
		for _, neighborhood := range Options(KeyNeighborhood) {
			for _, status := range Options(KeyStatus) {
				state := State{Bedrooms: bedrooms, Neighborhood: neighborhood, Status: status}
				encoded := state.Encode()
				values, err := url.ParseQuery(encoded)
				if err != nil {
					t.Fatalf("parse %q: %v", encoded, err)
				}
				if got := Parse(values); got != state {
					t.Fatalf("round trip %+v -> %q -> %+v", state, encoded, got)
				}
				for key, vals := range values {
					if vals[0] == Any {
						t.Fatalf("encoded %q contains %s=any", encoded, key)
					}
				}
			}
		}
	}
}

func TestURLAppendsQueryOnlyWhenFiltered(t *testing.T) {
	t.Parallel()

	if got := Default().URL("/en-US/"); got != "/en-US/" {
		t.Fatalf("URL() = %q, want %q", got, "/en-US/")
	}
	if got := Default().With(KeyStatus, "pending").URL("/en-US/"); got != "/en-US/?status=pending" {
		t.Fatalf("URL() = %q, want %q", got, "/en-US/?status=pending")
	}
}

func TestIsCanonical(t *testing.T) {
	t.Parallel()

	values, _ := url.ParseQuery("status=leased&bedrooms=any")
	state := Parse(values)
	if state.IsCanonical("status=leased&bedrooms=any") {
		t.Fatal("expected query with any to be non-canonical")
	}
	if !state.IsCanonical("status=leased") {
		t.Fatal("expected encoded query to be canonical")
	}
}

func TestBedroomsThreeIsAtLeastThree(t *testing.T) {
	t.Parallel()

	state := Default().With(KeyBedrooms, "3")
	for _, tc := range []struct {
		bedrooms int
		want     bool
	}{{0, false}, {2, false}, {3, true}, {4, true}, {7, true}} {
		apt := domain.Apartment{Bedrooms: tc.bedrooms, Neighborhood: domain.Downtown, Status: domain.StatusAvailable}
		if got := state.Matches(apt); got != tc.want {
			t.Fatalf("Matches(bedrooms=%d) = %t, want %t", tc.bedrooms, got, tc.want)
		}
	}

	exact := Default().With(KeyBedrooms, "2")
	if exact.Matches(domain.Apartment{Bedrooms: 3, Status: domain.StatusAvailable}) {
		t.Fatal("bedrooms=2 should not match three bedrooms")
	}
}

func TestApplyExamplesAgainstSampleCatalog(t *testing.T) {
	t.Parallel()

	catalog := memory.Seed()
	tests := []struct {
		name  string
		state State
		want  []string
	}{
		{
			name:  "two bedrooms available",
			state: State{Bedrooms: "2", Neighborhood: Any, Status: "available"},
			want:  []string{"Sunset Terrace"},
		},
		{
			name:  "leased",
			state: State{Bedrooms: Any, Neighborhood: Any, Status: "leased"},
			want:  []string{"Pine Ridge Flat"},
		},
		{
			name:  "studio",
			state: State{Bedrooms: "0", Neighborhood: Any, Status: Any},
			want:  []string{"Elm Street Studio"},
		},
		{
			name:  "three plus",
			state: State{Bedrooms: "3", Neighborhood: Any, Status: Any},
			want:  []string{"Maple Court"},
		},
		{
			name:  "one bedroom keeps order",
			state: State{Bedrooms: "1", Neighborhood: Any, Status: Any},
			want:  []string{"Harbor View Loft", "Birch Lane Apartment"},
		},
		{
			name:  "no match",
			state: State{Bedrooms: "3", Neighborhood: "Downtown", Status: Any},
			want:  []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := names(Apply(catalog, tc.state))
			if !equalStrings(got, tc.want) {
				t.Fatalf("Apply(%+v) = %v, want %v", tc.state, got, tc.want)
			}
		})
	}
}

func TestApplyIsOrderedSubsequenceSatisfyingPredicate(t *testing.T) {
	t.Parallel()

	catalog := memory.Seed()
	for _, bedrooms := range Options(KeyBedrooms) {
		for _, neighborhood := range Options(KeyNeighborhood) {
			for _, status := range Options(KeyStatus) {
				state := State{Bedrooms: bedrooms, Neighborhood: neighborhood, Status: status}
				got := Apply(catalog, state)

				next := 0
				for _, apt := range catalog {
					included := next < len(got) && got[next].ID == apt.ID
					if included {
						next++
					}
					if included != state.Matches(apt) {
						t.Fatalf("state %+v: apartment %q included=%t matches=%t", state, apt.Slug, included, state.Matches(apt))
					}
				}
				if next != len(got) {
					t.Fatalf("state %+v: result is not an ordered subsequence", state)
				}
			}
		}
	}
}

func TestZeroStateBehavesAsDefault(t *testing.T) {
	t.Parallel()

	var state State
	if !state.IsDefault() {
		t.Fatal("zero state should be default")
	}
	if got := len(Apply(memory.Seed(), state)); got != 6 {
		t.Fatalf("len(Apply(zero)) = %d, want 6", got)
	}
}
