package ns

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ns-api/ns-go/generated/travel"
)

// travelBasePath is the Reisinformatie API mount point under the gateway.
const travelBasePath = "/reisinformatie-api/api"

// DefaultMaxJourneys is the default number of board entries requested.
const DefaultMaxJourneys = 40

// BoardParams select a departure or arrival board.
type BoardParams struct {
	// Station is the NS station code, e.g. "ASD". Omit if UICCode is given.
	Station string

	// UICCode is the UIC station code. Alternative to Station.
	UICCode string

	// DateTime returns board entries from this moment onward. The zero value
	// means now. Only honoured for foreign stations; domestic boards use
	// server time.
	DateTime time.Time

	// MaxJourneys caps the number of entries. Defaults to DefaultMaxJourneys.
	MaxJourneys int

	// Language is a BCP-47 language tag for localised text, e.g. "nl" or "en".
	Language string
}

func (p BoardParams) query() map[string]string {
	max := p.MaxJourneys
	if max <= 0 {
		max = DefaultMaxJourneys
	}
	q := map[string]string{"maxJourneys": strconv.Itoa(max)}
	if p.Station != "" {
		q["station"] = p.Station
	}
	if p.UICCode != "" {
		q["uicCode"] = p.UICCode
	}
	if !p.DateTime.IsZero() {
		q["dateTime"] = p.DateTime.Format(time.RFC3339)
	}
	if p.Language != "" {
		q["lang"] = p.Language
	}
	return q
}

// GetDepartures returns upcoming departures for a station.
func (c *Client) GetDepartures(ctx context.Context, p BoardParams) ([]Departure, error) {
	var out travel.RepresentationResponseDeparturesPayload
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v2/departures", p.query(), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Payload.Departures, nil
}

// GetArrivals returns upcoming arrivals for a station.
func (c *Client) GetArrivals(ctx context.Context, p BoardParams) ([]Arrival, error) {
	var out travel.RepresentationResponseArrivalsPayload
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v2/arrivals", p.query(), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Payload.Arrivals, nil
}

// JourneyParams identify a journey. Either Train or JourneyID must be set.
type JourneyParams struct {
	// Train is the train number, e.g. 6952.
	Train int

	// JourneyID is the journeyDetailRef from trip planning output,
	// e.g. "1|231691|0|784|15122020".
	JourneyID string

	// DateTime is the date for this journey. The zero value means now.
	DateTime time.Time

	// DepartureUICCode marks a station as DEPARTURE in the result.
	DepartureUICCode string

	// TransferUICCode marks a station as TRANSFER in the result.
	TransferUICCode string

	// ArrivalUICCode marks a station as ARRIVAL in the result.
	ArrivalUICCode string

	// OmitCrowdForecast drops crowd forecast data from the result.
	OmitCrowdForecast bool
}

// GetJourney returns details for a specific journey.
func (c *Client) GetJourney(ctx context.Context, p JourneyParams) (*Journey, error) {
	q := map[string]string{"omitCrowdForecast": strconv.FormatBool(p.OmitCrowdForecast)}
	if p.Train > 0 {
		q["train"] = strconv.Itoa(p.Train)
	}
	if p.JourneyID != "" {
		q["id"] = p.JourneyID
	}
	if !p.DateTime.IsZero() {
		q["dateTime"] = p.DateTime.Format(time.RFC3339)
	}
	if p.DepartureUICCode != "" {
		q["departureUicCode"] = p.DepartureUICCode
	}
	if p.TransferUICCode != "" {
		q["transferUicCode"] = p.TransferUICCode
	}
	if p.ArrivalUICCode != "" {
		q["arrivalUicCode"] = p.ArrivalUICCode
	}

	var out travel.RepresentationResponseJourney
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v2/journey", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Payload, nil
}

// PlanTripParams describe a trip planning request.
//
// Origin and destination can be specified as NS station codes, UIC codes, or
// coordinates. At least one origin and one destination must be given.
type PlanTripParams struct {
	// FromStation is the origin NS station code, e.g. "ASD".
	FromStation string

	// ToStation is the destination NS station code, e.g. "UT".
	ToStation string

	OriginUICCode      string
	DestinationUICCode string

	// OriginLat/OriginLng describe a custom origin location.
	OriginLat *float64
	OriginLng *float64

	// DestinationLat/DestinationLng describe a custom destination location.
	DestinationLat *float64
	DestinationLng *float64

	// ViaStation is the NS station code of an intermediate via station.
	ViaStation string

	ViaUICCode string

	// ViaWaitTime is the required waiting time at the via stop in minutes.
	ViaWaitTime int

	// DateTime is the desired departure (or arrival) moment. The zero value
	// means now.
	DateTime time.Time

	// SearchForArrival treats DateTime as the desired arrival moment.
	SearchForArrival bool

	// Language is a BCP-47 language tag for localised text.
	Language string

	// Context is a pagination context from a previous response.
	Context string

	// AddChangeTime adds extra minutes required at all transfers.
	AddChangeTime *int

	LocalTrainsOnly        *bool
	ExcludeHighSpeedTrains *bool

	ExcludeTrainsWithReservationRequired *bool

	// DisabledTransportModalities lists modalities to exclude.
	DisabledTransportModalities []string

	// TravelClass is 1 or 2 and is used for price calculations.
	TravelClass int

	// Product is a product name for price calculations.
	Product string

	// Discount is a discount to apply for price calculations.
	Discount string
}

func (p PlanTripParams) query() map[string]string {
	q := map[string]string{}
	setString(q, "fromStation", p.FromStation)
	setString(q, "toStation", p.ToStation)
	setString(q, "originUicCode", p.OriginUICCode)
	setString(q, "destinationUicCode", p.DestinationUICCode)
	setFloat(q, "originLat", p.OriginLat)
	setFloat(q, "originLng", p.OriginLng)
	setFloat(q, "destinationLat", p.DestinationLat)
	setFloat(q, "destinationLng", p.DestinationLng)
	setString(q, "viaStation", p.ViaStation)
	setString(q, "viaUicCode", p.ViaUICCode)
	if p.ViaWaitTime > 0 {
		q["viaWaitTime"] = strconv.Itoa(p.ViaWaitTime)
	}
	if !p.DateTime.IsZero() {
		q["dateTime"] = p.DateTime.Format(time.RFC3339)
	}
	if p.SearchForArrival {
		q["searchForArrival"] = "true"
	}
	setString(q, "lang", p.Language)
	setString(q, "context", p.Context)
	setInt(q, "addChangeTime", p.AddChangeTime)
	setBool(q, "localTrainsOnly", p.LocalTrainsOnly)
	setBool(q, "excludeHighSpeedTrains", p.ExcludeHighSpeedTrains)
	setBool(q, "excludeTrainsWithReservationRequired", p.ExcludeTrainsWithReservationRequired)
	if len(p.DisabledTransportModalities) > 0 {
		q["disabledTransportModalities"] = strings.Join(p.DisabledTransportModalities, ",")
	}
	if p.TravelClass > 0 {
		q["travelClass"] = strconv.Itoa(p.TravelClass)
	}
	setString(q, "product", p.Product)
	setString(q, "discount", p.Discount)
	return q
}

// PlanTrip returns travel advice for a journey between two locations.
//
// The result contains the trip options via TravelAdvice.Trips, each with
// legs, stops, and fare information.
func (c *Client) PlanTrip(ctx context.Context, p PlanTripParams) (*TravelAdvice, error) {
	var out travel.TravelAdvice
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v3/trips", p.query(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TripParams identify a trip to reconstruct.
type TripParams struct {
	// CtxRecon is the reconstruction context from PlanTrip output.
	CtxRecon string

	// Date is the date to use when reconstructing; may differ from the
	// original. The zero value keeps the original date.
	Date time.Time

	// TravelRequestType is "DEFAULT", "DIRECTIONS", or "DIRECTIONS_ONLY".
	// Defaults to "DEFAULT".
	TravelRequestType string

	// Product is a product name for price calculations.
	Product string

	// Discount is a discount to apply for price calculations.
	Discount string

	// TravelClass is 1 or 2 and is used for price calculations.
	TravelClass int

	// Language is a BCP-47 language tag for localised text.
	Language string
}

// GetTrip reconstructs a single trip from a context reconstruction string.
func (c *Client) GetTrip(ctx context.Context, p TripParams) (*Trip, error) {
	reqType := p.TravelRequestType
	if reqType == "" {
		reqType = "DEFAULT"
	}
	q := map[string]string{"ctxRecon": p.CtxRecon, "travelRequestType": reqType}
	if !p.Date.IsZero() {
		q["date"] = p.Date.Format(time.RFC3339)
	}
	setString(q, "product", p.Product)
	setString(q, "discount", p.Discount)
	if p.TravelClass > 0 {
		q["travelClass"] = strconv.Itoa(p.TravelClass)
	}

	var headers map[string]string
	if p.Language != "" {
		headers = map[string]string{"lang": p.Language}
	}

	var out travel.Trip
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v3/trips/trip", q, headers, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookedTripParams identify a booked trip in the travel assistance system.
type BookedTripParams struct {
	// CtxRecon is the reconstruction context from PlanTrip output.
	CtxRecon string

	// BookingNumber is the booking number of the reservation.
	BookingNumber int

	// OriginalTripRequestID is the request ID the advice was originally
	// planned under.
	OriginalTripRequestID int

	// Authorization is the bearer token of the travel assistance user.
	Authorization string

	// AccessibilityEquipment1 is the primary accessibility equipment code.
	AccessibilityEquipment1 string

	// AccessibilityEquipment2 is the secondary accessibility equipment code.
	AccessibilityEquipment2 string

	// Language is a BCP-47 language tag for localised text.
	Language string
}

// GetBookedTrip returns a trip booked through the travel assistance system.
//
// Unlike the other travel endpoints, this one authenticates the traveller
// with a bearer token on top of the subscription key.
func (c *Client) GetBookedTrip(ctx context.Context, p BookedTripParams) (*Trip, error) {
	q := map[string]string{
		"ctxRecon":              p.CtxRecon,
		"bookingNumber":         strconv.Itoa(p.BookingNumber),
		"originalTripRequestId": strconv.Itoa(p.OriginalTripRequestID),
	}
	setString(q, "accessibilityEquipment1", p.AccessibilityEquipment1)
	setString(q, "accessibilityEquipment2", p.AccessibilityEquipment2)

	headers := map[string]string{"Authorization": p.Authorization}
	if p.Language != "" {
		headers["lang"] = p.Language
	}

	var out travel.Trip
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v3/trips/booked-trip", q, headers, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceParams describe a domestic price lookup.
type PriceParams struct {
	// FromStation is the origin station code or UIC code.
	FromStation string

	// ToStation is the destination station code or UIC code.
	ToStation string

	// TravelClass is TravelClassFirst or TravelClassSecond.
	TravelClass TravelClass

	// TravelType is "single" or "return".
	TravelType string

	// IsJointJourney includes the joint journey discount.
	IsJointJourney bool

	// Adults is the number of adults. Defaults to 1.
	Adults int

	// Children is the number of children.
	Children int

	// RouteID selects a specific route from PlanTrip output.
	RouteID string

	// PlannedDepartureTime resolves the route by departure time.
	PlannedDepartureTime time.Time

	// PlannedArrivalTime resolves the route by arrival time.
	PlannedArrivalTime time.Time
}

// GetPrice returns domestic price information (v3).
func (c *Client) GetPrice(ctx context.Context, p PriceParams) (*PricesResponse, error) {
	adults := p.Adults
	if adults <= 0 {
		adults = 1
	}
	q := map[string]string{
		"isJointJourney": strconv.FormatBool(p.IsJointJourney),
		"adults":         strconv.Itoa(adults),
		"children":       strconv.Itoa(p.Children),
	}
	setString(q, "fromStation", p.FromStation)
	setString(q, "toStation", p.ToStation)
	setString(q, "travelClass", string(p.TravelClass))
	setString(q, "travelType", p.TravelType)
	setString(q, "routeId", p.RouteID)
	if !p.PlannedDepartureTime.IsZero() {
		q["plannedDepartureTime"] = p.PlannedDepartureTime.Format(time.RFC3339)
	}
	if !p.PlannedArrivalTime.IsZero() {
		q["plannedArrivalTime"] = p.PlannedArrivalTime.Format(time.RFC3339)
	}

	var out travel.RepresentationResponsePricesResponse
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v3/price", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Payload, nil
}

// GetPriceV2 returns domestic price information (v2, legacy).
//
// Prefer GetPrice (v3) where possible. The v2 endpoint uses integer strings
// ("1", "2") for the travel class instead of FIRST_CLASS/SECOND_CLASS.
func (c *Client) GetPriceV2(ctx context.Context, p PriceParams) (*Price, error) {
	adults := p.Adults
	if adults <= 0 {
		adults = 1
	}
	q := map[string]string{
		"isJointJourney": strconv.FormatBool(p.IsJointJourney),
		"adults":         strconv.Itoa(adults),
		"children":       strconv.Itoa(p.Children),
	}
	setString(q, "fromStation", p.FromStation)
	setString(q, "toStation", p.ToStation)
	switch p.TravelClass {
	case TravelClassFirst:
		q["travelClass"] = "1"
	case TravelClassSecond:
		q["travelClass"] = "2"
	}
	setString(q, "travelType", p.TravelType)
	setString(q, "routeId", p.RouteID)
	if !p.PlannedDepartureTime.IsZero() {
		q["plannedFromTime"] = p.PlannedDepartureTime.Format(time.RFC3339)
	}
	if !p.PlannedArrivalTime.IsZero() {
		q["plannedArrivalTime"] = p.PlannedArrivalTime.Format(time.RFC3339)
	}

	var out travel.RepresentationResponsePrice
	if err := c.Do(ctx, http.MethodGet, travelBasePath+"/v2/price", q, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Payload, nil
}

// Query parameter helpers: values are only sent when set.

func setString(q map[string]string, key, value string) {
	if value != "" {
		q[key] = value
	}
}

func setInt(q map[string]string, key string, value *int) {
	if value != nil {
		q[key] = strconv.Itoa(*value)
	}
}

func setBool(q map[string]string, key string, value *bool) {
	if value != nil {
		q[key] = strconv.FormatBool(*value)
	}
}

func setFloat(q map[string]string, key string, value *float64) {
	if value != nil {
		q[key] = strconv.FormatFloat(*value, 'f', -1, 64)
	}
}
