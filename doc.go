// Package ns is a Go client for the NS (Dutch Railways) public APIs.
//
// It covers the Stations, Reisinformatie (travel information), and
// Disruptions APIs behind the NS API gateway. Authentication uses an API
// subscription key sent in the Ocp-Apim-Subscription-Key header.
//
// By default, the client reads configuration from environment variables:
//
//   - NS_API_KEY (required)
//   - NS_API_URL (optional; defaults to https://gateway.apiportal.ns.nl)
//
// For most operations, prefer the typed convenience methods on Client.
// Use Client.Do for low-level/escape-hatch requests.
//
// The data models under generated/ are produced from the NS OpenAPI
// specifications by cmd/modelgen; see generated/gen.go for regeneration.
package ns
