// Package generated groups the model packages produced from the NS OpenAPI
// specifications.
//
// Regenerate with:
//
//	go generate ./...
//
// The specifications live under openapi/. Regeneration runs oapi-codegen for
// each specification, prepends the provenance header, and applies the known
// corrections for cases where the published schema disagrees with what the
// API actually returns (see cmd/modelgen/rules.go).
package generated

//go:generate go run ../cmd/modelgen
