package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// generatedTravel is the shape the generator emits for the affected travel
// models, before the pipeline appends the strict decoders and patches.
const generatedTravel = `// Package travel provides primitives to interact with the openapi HTTP API.
//
// Code generated by github.com/oapi-codegen/oapi-codegen/v2 version v2.5.1 DO NOT EDIT.
package travel

import (
	"encoding/json"
	"time"
)

// Departure defines model for Departure.
type Departure struct {
	ActualDateTime time.Time ` + "`json:\"actualDateTime\"`" + `
	ActualTrack    string    ` + "`json:\"actualTrack\"`" + `
	Cancelled      bool      ` + "`json:\"cancelled\"`" + `
}

// DeparturesPayload defines model for DeparturesPayload.
type DeparturesPayload struct {
	Departures []Departure ` + "`json:\"departures\"`" + `
}

// NesProperties defines model for NesProperties.
type NesProperties struct {
	Color  *string      ` + "`json:\"color,omitempty\"`" + `
	Scope  *string      ` + "`json:\"scope,omitempty\"`" + `
	Styles *StylesUnion ` + "`json:\"styles,omitempty\"`" + `
}

// RepresentationResponseDeparturesPayload defines model for RepresentationResponseDeparturesPayload.
type RepresentationResponseDeparturesPayload struct {
	Links   *map[string]interface{}            ` + "`json:\"links,omitempty\"`" + `
	Meta    *map[string]map[string]interface{} ` + "`json:\"meta,omitempty\"`" + `
	Payload DeparturesPayload                  ` + "`json:\"payload\"`" + `
}

// StylesUnion defines model for StylesUnion.
type StylesUnion struct {
	union json.RawMessage
}

// Trip defines model for Trip.
type Trip struct {
	Optimal                  bool ` + "`json:\"optimal\"`" + `
	PlannedDurationInMinutes int  ` + "`json:\"plannedDurationInMinutes\"`" + `
}
`

// travelEnvelopes is the subset of envelope types present in the fixture.
var travelEnvelopes = []string{"RepresentationResponseDeparturesPayload"}

// writeGeneratedTravel lays down the fixture the way the pipeline would see
// it right before patching: generator output plus the strict decoders.
func writeGeneratedTravel(t *testing.T, root string) string {
	t.Helper()
	path := filepath.Join(root, travelOut)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(generatedTravel), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := appendStrictDecoders(path, travelEnvelopes); err != nil {
		t.Fatalf("appendStrictDecoders: %v", err)
	}
	return path
}

func rulesFor(target string) []patchRule {
	var out []patchRule
	for _, r := range rules {
		if r.Target == target {
			out = append(out, r)
		}
	}
	return out
}

func applyAll(t *testing.T, root, target string) *bytes.Buffer {
	t.Helper()
	stderr := &bytes.Buffer{}
	p := &pipeline{Root: root, Stderr: stderr}
	for _, r := range rulesFor(target) {
		if err := p.apply(r); err != nil {
			t.Fatalf("apply %q: %v", r.Name, err)
		}
	}
	return stderr
}

func TestRulesReplacementNeverMatchesOwnPattern(t *testing.T) {
	for _, r := range rules {
		if r.Replace != "" && r.Pattern.MatchString(r.Replace) {
			t.Errorf("rule %q: replacement matches its own pattern", r.Name)
		}
	}
}

func TestRulesTargetKnownArtifacts(t *testing.T) {
	known := map[string]bool{}
	for _, tgt := range targets {
		known[tgt.Out] = true
	}
	for _, r := range rules {
		if !known[r.Target] {
			t.Errorf("rule %q targets unknown artifact %s", r.Name, r.Target)
		}
	}
}

func TestConfigFilesMatchTargets(t *testing.T) {
	root, err := findModuleRoot()
	if err != nil {
		t.Fatalf("findModuleRoot: %v", err)
	}
	for _, tgt := range targets {
		raw, err := os.ReadFile(filepath.Join(root, tgt.Config))
		if err != nil {
			t.Fatalf("target %s: %v", tgt.Name, err)
		}
		var cfg struct {
			Package string `yaml:"package"`
			Output  string `yaml:"output"`
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			t.Fatalf("target %s: parse config: %v", tgt.Name, err)
		}
		if cfg.Output != tgt.Out {
			t.Errorf("target %s: config writes %s, pipeline expects %s", tgt.Name, cfg.Output, tgt.Out)
		}
		if cfg.Package == "" {
			t.Errorf("target %s: config carries no package name", tgt.Name)
		}
		if _, err := os.Stat(filepath.Join(root, tgt.Spec)); err != nil {
			t.Errorf("target %s: %v", tgt.Name, err)
		}
	}
}

func TestAppendStrictDecoders(t *testing.T) {
	root := t.TempDir()
	path := writeGeneratedTravel(t, root)

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"\t\"bytes\"\n",
		"dec.DisallowUnknownFields()",
		"rejecting fields not declared in the schema",
		"func (r *RepresentationResponseDeparturesPayload) UnmarshalJSON(b []byte) error {",
	} {
		if !strings.Contains(string(got), want) {
			t.Errorf("artifact with strict decoders missing %q", want)
		}
	}

	// A second pass over an artifact that already carries the decoders
	// must change nothing.
	if err := appendStrictDecoders(path, travelEnvelopes); err != nil {
		t.Fatalf("appendStrictDecoders (second run): %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(got), string(again)); diff != "" {
		t.Errorf("second pass changed the artifact (-once +twice):\n%s", diff)
	}
}

func TestApplyTravelRules(t *testing.T) {
	root := t.TempDir()
	path := writeGeneratedTravel(t, root)

	stderr := applyAll(t, root, travelOut)
	if stderr.Len() != 0 {
		t.Errorf("every travel rule should match generator output, got notes:\n%s", stderr.String())
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Styles *Styles `json:\"styles,omitempty\"`",
		"ActualDateTime *time.Time `json:\"actualDateTime,omitempty\"`",
		"ActualTrack    *string    `json:\"actualTrack,omitempty\"`",
		"PlannedDurationInMinutes *int `json:\"plannedDurationInMinutes,omitempty\"`",
		"Meta    *map[string]interface{} `json:\"meta,omitempty\"`",
		"Unknown fields are ignored",
	} {
		if !strings.Contains(string(got), want) {
			t.Errorf("patched travel artifact missing %q", want)
		}
	}
	for _, stale := range []string{
		"*StylesUnion ",
		"DisallowUnknownFields",
		"map[string]map[string]interface{}",
		"rejecting fields",
	} {
		if strings.Contains(string(got), stale) {
			t.Errorf("patched travel artifact still contains %q", stale)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	root := t.TempDir()
	path := writeGeneratedTravel(t, root)

	applyAll(t, root, travelOut)
	once, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	applyAll(t, root, travelOut)
	twice, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(string(once), string(twice)); diff != "" {
		t.Errorf("second pass changed the artifact (-once +twice):\n%s", diff)
	}
}

func TestApplyZeroMatchLeavesFileUntouched(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, travelOut)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	// Deliberately unformatted: a no-op rule must not even reformat.
	const src = "package travel\n\ntype   Unrelated struct{}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	p := &pipeline{Root: root, Stderr: &stderr}
	rule := rulesFor(travelOut)[0]
	if err := p.apply(rule); err != nil {
		t.Fatalf("apply: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != src {
		t.Errorf("zero-match rule modified the artifact:\n%s", got)
	}
	if !strings.Contains(stderr.String(), "matched nothing") {
		t.Errorf("expected a zero-match note on stderr, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), rule.Name) {
		t.Errorf("zero-match note does not name the rule: %q", stderr.String())
	}
}

func TestPrependHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gen.go")
	const body = "package travel\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := prependHeader(path); err != nil {
		t.Fatalf("prependHeader: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := generatedHeader + body
	if string(got) != want {
		t.Errorf("headed artifact mismatch:\n%s", cmp.Diff(want, string(got)))
	}

	// Running again must not stack a second header.
	if err := prependHeader(path); err != nil {
		t.Fatalf("prependHeader (second run): %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != want {
		t.Errorf("second prependHeader changed the artifact:\n%s", cmp.Diff(want, string(again)))
	}
}

func TestHeaderShape(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(generatedHeader, "\n"), "\n")
	if len(lines) != 3 || lines[2] != "" {
		t.Fatalf("header must be two comment lines and a blank separator, got %q", generatedHeader)
	}
	if !strings.Contains(lines[0], "DO NOT EDIT") {
		t.Errorf("first header line must carry the DO NOT EDIT marker: %q", lines[0])
	}
	if !strings.Contains(lines[1], "go run ./cmd/modelgen") {
		t.Errorf("second header line must name the regeneration command: %q", lines[1])
	}
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.gen.go")
	if err := writeFileAtomic(path, []byte("package x\n")); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}
	if err := writeFileAtomic(path, []byte("package y\n")); err != nil {
		t.Fatalf("writeFileAtomic (overwrite): %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "package y\n" {
		t.Errorf("unexpected content %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the artifact in %s, found %d entries", dir, len(entries))
	}
}

const minimalSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "t", "version": "1.0"},
  "paths": {}
}`

func writeSpec(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(minimalSpec), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestValidateSpec(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "ok.json")
	if err := validateSpec(filepath.Join(root, "ok.json")); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}

	bad := filepath.Join(root, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := validateSpec(bad); err == nil {
		t.Error("malformed spec accepted")
	}

	if err := validateSpec(filepath.Join(root, "missing.json")); err == nil {
		t.Error("missing spec accepted")
	}
}

func TestRunAbortsOnGeneratorFailure(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "openapi/a.json")
	writeSpec(t, root, "openapi/b.json")

	boom := errors.New("boom")
	var generated []string

	p := &pipeline{
		Root: root,
		Targets: []target{
			{Name: "a", Spec: "openapi/a.json", Config: "openapi/a.cfg.yaml", Out: "generated/a/a.gen.go"},
			{Name: "b", Spec: "openapi/b.json", Config: "openapi/b.cfg.yaml", Out: "generated/b/b.gen.go"},
		},
		Rules: []patchRule{{
			Name:    "never reached",
			Target:  "generated/a/a.gen.go",
			Pattern: rules[0].Pattern,
			Replace: "",
		}},
		RunGenerator: func(root string, tgt target) error {
			generated = append(generated, tgt.Name)
			if tgt.Name == "b" {
				return boom
			}
			return os.WriteFile(filepath.Join(root, tgt.Out), []byte("package "+tgt.Name+"\n"), 0o644)
		},
		Stderr: &bytes.Buffer{},
	}

	err := p.Run()
	if err == nil {
		t.Fatal("expected generator failure to surface")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error does not wrap the generator failure: %v", err)
	}
	if !strings.Contains(err.Error(), "generate b") {
		t.Errorf("error does not name the failing target: %v", err)
	}
	if len(generated) != 2 {
		t.Errorf("expected generation to stop at the failing target, ran %v", generated)
	}

	// The first artifact keeps its generated content; no rule ran.
	got, readErr := os.ReadFile(filepath.Join(root, "generated/a/a.gen.go"))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if !strings.HasPrefix(string(got), generatedHeader) {
		t.Errorf("surviving artifact lost its header:\n%s", got)
	}
}

func TestRunGeneratesThenPatches(t *testing.T) {
	root := t.TempDir()
	writeSpec(t, root, "openapi/travel.json")

	p := &pipeline{
		Root: root,
		Targets: []target{
			{
				Name:      "travel",
				Spec:      "openapi/travel.json",
				Config:    "openapi/travel.cfg.yaml",
				Out:       travelOut,
				Envelopes: travelEnvelopes,
			},
		},
		Rules: rulesFor(travelOut),
		RunGenerator: func(root string, tgt target) error {
			return os.WriteFile(filepath.Join(root, tgt.Out), []byte(generatedTravel), 0o644)
		},
		Stderr: &bytes.Buffer{},
	}

	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, travelOut))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(got), generatedHeader) {
		t.Errorf("artifact is missing the provenance header:\n%s", got)
	}
	if strings.Contains(string(got), "DisallowUnknownFields") {
		t.Error("strict decoding survived patching")
	}
	if !strings.Contains(string(got), "func (r *RepresentationResponseDeparturesPayload) UnmarshalJSON(b []byte) error {") {
		t.Error("envelope decoder was not generated")
	}
	if !strings.Contains(string(got), "ActualDateTime *time.Time") {
		t.Error("optionality patch was not applied")
	}
	if !strings.Contains(string(got), "Meta    *map[string]interface{} `json:\"meta,omitempty\"`") {
		t.Error("meta flattening patch was not applied")
	}
}

func TestFindModuleRootFailsWithoutGoMod(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if _, err := findModuleRoot(); err == nil {
		t.Error("expected an error outside any module")
	}
}
