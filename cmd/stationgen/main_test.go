package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	ns "github.com/ns-api/ns-go"
	"github.com/ns-api/ns-go/generated/stations"
)

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Amsterdam Centraal", "AmsterdamCentraal"},
		{"'s-Hertogenbosch Oost", "SHertogenboschOost"},
		{"Düsseldorf Hbf", "DusseldorfHbf"},
		{"Coevorden", "Coevorden"},
		{"Château-Thierry", "ChateauThierry"},
		{"Delft Campus", "DelftCampus"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := toIdentifier(tt.name); got != tt.want {
			t.Errorf("toIdentifier(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func station(code, long, country string) ns.StationV3 {
	return ns.StationV3{
		Id:      stations.StationIdentification{Code: &code, UicCode: "8400000"},
		Names:   stations.StationNames{Long: long, Medium: long, Short: long},
		Country: country,
	}
}

func TestBuildEntriesSortsAndSkips(t *testing.T) {
	noCode := ns.StationV3{
		Names:   stations.StationNames{Long: "Ghost Halt"},
		Country: "NL",
	}
	list := []ns.StationV3{
		station("UT", "Utrecht Centraal", "NL"),
		station("ASD", "Amsterdam Centraal", "NL"),
		noCode,
	}

	got := buildEntries(list)
	want := []entry{
		{Ident: "StationAmsterdamCentraal", Code: "ASD", Name: "Amsterdam Centraal", Country: "NL"},
		{Ident: "StationUtrechtCentraal", Code: "UT", Name: "Utrecht Centraal", Country: "NL"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildEntries mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEntriesDisambiguatesCollisions(t *testing.T) {
	list := []ns.StationV3{
		station("NWK", "Nieuwerkerk a/d IJssel", "NL"),
		station("NWK2", "Nieuwerkerk a/d IJssel", "NL"),
	}

	got := buildEntries(list)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Ident == got[1].Ident {
		t.Fatalf("colliding names were not disambiguated: %q", got[0].Ident)
	}
	for _, e := range got {
		if !strings.HasPrefix(e.Ident, "StationNieuwerkerkADIJssel") {
			t.Errorf("unexpected identifier %q", e.Ident)
		}
	}
}

func TestRenderProducesGofmtedSource(t *testing.T) {
	entries := []entry{
		{Ident: "StationAmsterdamCentraal", Code: "ASD", Name: "Amsterdam Centraal", Country: "NL"},
		{Ident: "StationUtrechtCentraal", Code: "UT", Name: "Utrecht Centraal", Country: "NL"},
	}
	src, err := render(entries)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	got := string(src)
	if !strings.HasPrefix(got, header) {
		t.Errorf("output is missing the provenance header:\n%s", got)
	}
	if !strings.Contains(got, "package ns\n") {
		t.Errorf("output is not in package ns:\n%s", got)
	}
	if !strings.Contains(got, `StationAmsterdamCentraal StationCode = "ASD" // Amsterdam Centraal (NL)`) {
		t.Errorf("output is missing the Amsterdam constant:\n%s", got)
	}
}
