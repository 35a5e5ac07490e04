package ns

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ns-api/ns-go/generated/disruptions"
	"github.com/ns-api/ns-go/generated/stations"
	"github.com/ns-api/ns-go/generated/travel"
)

// Typed API models (aliases of the generated OpenAPI models).
//
// These aliases let consumers import just "github.com/ns-api/ns-go" for types.

type StationV2 = stations.StationV2
type StationV3 = stations.StationV3
type StationType = stations.StationType

type Departure = travel.Departure
type Arrival = travel.Arrival
type Journey = travel.Journey
type TravelAdvice = travel.TravelAdvice
type Trip = travel.Trip
type Leg = travel.Leg
type TravelClass = travel.TravelClass
type PricesResponse = travel.PricesResponse
type Price = travel.Price

type Disruption = disruptions.Disruption
type DisruptionType = disruptions.DisruptionType
type PersonalDisruption = disruptions.PersonalDisruption
type SyncSavedTripsRequest = disruptions.SyncSavedTripsRequest

// Re-exported travel class values.
const (
	TravelClassFirst  = travel.TravelClassFirstClass
	TravelClassSecond = travel.TravelClassSecondClass
)

// Re-exported disruption type values.
const (
	DisruptionTypeCalamity    = disruptions.DisruptionTypeCalamity
	DisruptionTypeDisruption  = disruptions.DisruptionTypeDisruption
	DisruptionTypeMaintenance = disruptions.DisruptionTypeMaintenance
)

// Date is the date-only type used by the generated models.
type Date = openapi_types.Date
