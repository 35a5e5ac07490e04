package ns

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// disruptionsBasePath is the Disruptions API mount point under the gateway.
const disruptionsBasePath = "/disruptions"

// ListDisruptionsParams filter the disruptions listing.
type ListDisruptionsParams struct {
	// IsActive returns only currently active disruptions when set to true.
	IsActive *bool

	// Type filters by DISRUPTION, MAINTENANCE, or CALAMITY.
	Type DisruptionType

	// Language is a BCP-47 language tag for localised text, e.g. "nl" or "en".
	Language string
}

// ListDisruptions returns all disruptions, optionally filtered by active
// state or type.
//
// Calamities appear in the result with Type set to DisruptionTypeCalamity.
func (c *Client) ListDisruptions(ctx context.Context, p ListDisruptionsParams) ([]Disruption, error) {
	q := map[string]string{}
	if p.IsActive != nil {
		q["isActive"] = strconv.FormatBool(*p.IsActive)
	}
	if p.Type != "" {
		q["type"] = string(p.Type)
	}

	var out []Disruption
	if err := c.Do(ctx, http.MethodGet, disruptionsBasePath+"/v3", q, languageHeader(p.Language), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDisruption returns a single disruption by type and ID.
func (c *Client) GetDisruption(ctx context.Context, disruptionType DisruptionType, id string, language string) (*Disruption, error) {
	apiPath := fmt.Sprintf("%s/v3/%s/%s", disruptionsBasePath, url.PathEscape(string(disruptionType)), url.PathEscape(id))

	var out Disruption
	if err := c.Do(ctx, http.MethodGet, apiPath, nil, languageHeader(language), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListStationDisruptions returns all disruptions affecting a specific station.
func (c *Client) ListStationDisruptions(ctx context.Context, stationCode string, language string) ([]Disruption, error) {
	apiPath := fmt.Sprintf("%s/v3/station/%s", disruptionsBasePath, url.PathEscape(stationCode))

	var out []Disruption
	if err := c.Do(ctx, http.MethodGet, apiPath, nil, languageHeader(language), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPersonalDisruptions returns disruptions affecting the saved trips of an
// NS app user, identified by push ID.
func (c *Client) ListPersonalDisruptions(ctx context.Context, pushID string) ([]PersonalDisruption, error) {
	headers := map[string]string{"x-ns-push-id": pushID}

	var out []PersonalDisruption
	if err := c.Do(ctx, http.MethodGet, disruptionsBasePath+"/v1/personal-disruptions", nil, headers, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncSavedTrips registers a saved trip for personal disruption matching.
// The endpoint requires its own x-api-key on top of the subscription key.
func (c *Client) SyncSavedTrips(ctx context.Context, apiKey string, trip SyncSavedTripsRequest) error {
	headers := map[string]string{"x-api-key": apiKey}
	return c.Do(ctx, http.MethodPost, disruptionsBasePath+"/v1/personal-disruptions/sync/saved-trips", nil, headers, trip, nil)
}

func languageHeader(language string) map[string]string {
	if language == "" {
		return nil
	}
	return map[string]string{"Accept-Language": language}
}
