// stationgen regenerates stationcodes.gen.go: one StationCode constant per
// station known to the Stations API. Requires NS_API_KEY to be set.
//
// Usage:
//
//	go run ./cmd/stationgen [-countries NL] [-o stationcodes.gen.go]
package main

import (
	"context"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	ns "github.com/ns-api/ns-go"
)

const header = `// Code generated from the NS Stations API by stationgen; DO NOT EDIT.
// Regenerate with: go run ./cmd/stationgen

`

func main() {
	var (
		countries = flag.String("countries", "NL", "Comma-separated ISO 3166-1 alpha-2 country codes to include")
		out       = flag.String("o", "stationcodes.gen.go", "Output file")
	)
	flag.Parse()

	if err := run(*countries, *out); err != nil {
		fmt.Fprintf(os.Stderr, "stationgen: %v\n", err)
		os.Exit(1)
	}
}

func run(countries, out string) error {
	client, err := ns.NewClient(ns.Options{})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	list, err := client.ListStationsV3(ctx, ns.ListStationsParams{CountryCodes: countries})
	if err != nil {
		return err
	}

	entries := buildEntries(list)
	if len(entries) == 0 {
		return fmt.Errorf("no stations with a code in countries %q", countries)
	}

	src, err := render(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

// entry is one generated constant.
type entry struct {
	Ident   string // Go identifier, e.g. StationAmsterdamCentraal
	Code    string // NS station code, e.g. ASD
	Name    string // long display name
	Country string
}

// buildEntries turns the station list into constants sorted by display name.
// Stations without an NS code are skipped. When two stations reduce to the
// same identifier, both get their code appended to stay unique.
func buildEntries(list []ns.StationV3) []entry {
	var entries []entry
	for _, s := range list {
		if s.Id.Code == nil || *s.Id.Code == "" {
			continue
		}
		ident := "Station" + toIdentifier(s.Names.Long)
		if ident == "Station" {
			continue
		}
		entries = append(entries, entry{
			Ident:   ident,
			Code:    *s.Id.Code,
			Name:    s.Names.Long,
			Country: s.Country,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Code < entries[j].Code
	})

	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Ident]++
	}
	for i, e := range entries {
		if counts[e.Ident] > 1 {
			entries[i].Ident = e.Ident + toIdentifier(e.Code)
		}
	}
	return entries
}

// stripMarks removes diacritics, so "Düsseldorf" reduces to "Dusseldorf".
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// toIdentifier reduces a station display name to a Go identifier fragment.
// Diacritics are stripped, punctuation splits words, and every word is
// capitalised: "'s-Hertogenbosch Oost" → "SHertogenboschOost".
func toIdentifier(name string) string {
	stripped, _, err := transform.String(stripMarks, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	startWord := true
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startWord = true
			continue
		}
		if startWord {
			b.WriteRune(unicode.ToUpper(r))
			startWord = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func render(entries []entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("package ns\n\n")
	b.WriteString("// StationCode is an NS station code, e.g. \"ASD\" for Amsterdam Centraal.\n")
	b.WriteString("type StationCode string\n\n")
	b.WriteString("const (\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\t%s StationCode = %q // %s (%s)\n", e.Ident, e.Code, e.Name, e.Country)
	}
	b.WriteString(")\n")
	return format.Source([]byte(b.String()))
}
