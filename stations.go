package ns

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ns-api/ns-go/generated/stations"
)

// stationsBasePath is the Stations API mount point under the gateway.
const stationsBasePath = "/nsapp-stations"

// ListStationsParams are the optional filters for station searches.
type ListStationsParams struct {
	// Query is a free-text search string filtered on station name or synonym.
	Query string

	// CountryCodes is a comma-separated list of ISO 3166-1 alpha-2 country
	// codes to filter on, e.g. "NL,BE".
	CountryCodes string

	// IncludeNonPlannable includes stations that cannot be used as an origin
	// or destination in trip planning.
	IncludeNonPlannable *bool

	// Limit caps the number of stations returned.
	Limit int
}

func (p ListStationsParams) query() map[string]string {
	q := map[string]string{}
	if p.Query != "" {
		q["q"] = p.Query
	}
	if p.CountryCodes != "" {
		q["countryCodes"] = p.CountryCodes
	}
	if p.IncludeNonPlannable != nil {
		q["includeNonPlannableStations"] = strconv.FormatBool(*p.IncludeNonPlannable)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}

// ListStationsV2 searches stations (v2, Dutch field names).
func (c *Client) ListStationsV2(ctx context.Context, p ListStationsParams) ([]StationV2, error) {
	var out stations.StationsV2Response
	if err := c.Do(ctx, http.MethodGet, stationsBasePath+"/v2", p.query(), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Payload, nil
}

// ListNearestStationsV2 returns the stations closest to the given coordinates (v2).
func (c *Client) ListNearestStationsV2(ctx context.Context, lat, lng float64, limit int) ([]StationV2, error) {
	q := coordinateQuery(lat, lng, limit)

	var out stations.StationsV2Response
	if err := c.Do(ctx, http.MethodGet, stationsBasePath+"/v2/nearest", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Payload, nil
}

// ListStationsV3 searches stations (v3, English field names).
func (c *Client) ListStationsV3(ctx context.Context, p ListStationsParams) ([]StationV3, error) {
	var out stations.StationsV3Response
	if err := c.Do(ctx, http.MethodGet, stationsBasePath+"/v3", p.query(), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Payload, nil
}

// ListNearestStationsV3 returns the stations closest to the given coordinates (v3).
func (c *Client) ListNearestStationsV3(ctx context.Context, lat, lng float64, limit int) ([]StationV3, error) {
	q := coordinateQuery(lat, lng, limit)

	var out stations.StationsV3Response
	if err := c.Do(ctx, http.MethodGet, stationsBasePath+"/v3/nearest", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Payload, nil
}

// GetStation returns a single station by UIC code (v3 model).
func (c *Client) GetStation(ctx context.Context, uicCode string) (*StationV3, error) {
	q := map[string]string{"uicCode": uicCode}

	var out stations.StationV3Response
	if err := c.Do(ctx, http.MethodGet, stationsBasePath+"/v1/station", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Payload, nil
}

func coordinateQuery(lat, lng float64, limit int) map[string]string {
	q := map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', -1, 64),
		"lng": strconv.FormatFloat(lng, 'f', -1, 64),
	}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}
	return q
}
