package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if LocalePattern != "/{locale}" {
		t.Fatalf("LocalePattern = %q", LocalePattern)
	}
	if IndexPattern != "/{locale}/{$}" {
		t.Fatalf("IndexPattern = %q", IndexPattern)
	}
	if ApartmentPattern != "/{locale}/apartment/{slug}" {
		t.Fatalf("ApartmentPattern = %q", ApartmentPattern)
	}
}

func TestPathBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "index", got: Index("es-ES"), want: "/es-ES/"},
		{name: "apartment", got: Apartment("fr-FR", "sunset-terrace"), want: "/fr-FR/apartment/sunset-terrace"},
		{name: "escaped slug", got: Apartment("en-US", " a b/c "), want: "/en-US/apartment/a%20b%2Fc"},
		{name: "static", got: Static("/site.css"), want: "/static/site.css"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}
