package pricing

import (
	"math"

	"travel-webapp/errors"
)

// DefaultGstPer applies when the caller does not supply a GST percentage.
const DefaultGstPer = 5.0

// DefaultAdultCount applies when neither totalAdultCount nor the legacy
// noOfAdult field was provided at the API boundary.
const DefaultAdultCount = 2

// HotelMealCost carries the six pre-computed cost components of one hotel
// stay. Per-stay season/meal-plan arithmetic happens upstream; the quote
// only sums these.
type HotelMealCost struct {
	AdultPrice      float64 `json:"adultPrice" bson:"adultPrice"`
	ChildPrice      float64 `json:"childPrice" bson:"childPrice"`
	ExtraAdultPrice float64 `json:"extraAdultPrice" bson:"extraAdultPrice"`
	AdultGst        float64 `json:"adultGst" bson:"adultGst"`
	ChildGst        float64 `json:"childGst" bson:"childGst"`
	ExtraAdultGst   float64 `json:"extraAdultGst" bson:"extraAdultGst"`
}

// VehicleLine is one vehicle transfer line item.
type VehicleLine struct {
	Name  string  `json:"name,omitempty" bson:"name,omitempty"`
	Price float64 `json:"price" bson:"price"`
}

// ActivityEvent is a single bookable event within an itinerary day.
type ActivityEvent struct {
	Name  string  `json:"name,omitempty" bson:"name,omitempty"`
	Price float64 `json:"price" bson:"price"`
}

// ActivityDay groups the events of one itinerary day.
type ActivityDay struct {
	Day    int             `json:"day,omitempty" bson:"day,omitempty"`
	Events []ActivityEvent `json:"events" bson:"events"`
}

// QuoteInput is the canonical input of the calculator. Legacy field
// spellings (noOfAdult, transPer, marketingPer) are mapped onto it at the
// API boundary and never appear below this point.
type QuoteInput struct {
	HotelMeals         []HotelMealCost
	Vehicles           []VehicleLine
	Activities         []ActivityDay
	ActivityPrice      float64 // flat override, wins over event sums when > 0
	AdditionalFees     float64
	TransportFee       float64
	MarketingFee       float64
	AgentCommissionPer float64
	GstPer             float64
	TotalAdultCount    int
}

// Quote is the full price breakdown. Computed fresh on every request and
// never persisted on its own; booking creation copies the totals it needs.
type Quote struct {
	TotalRoomPrice        float64 `json:"totalRoomPrice"`
	TotalAdditionalFee    float64 `json:"totalAdditionalFee"`
	TotalTransportFee     float64 `json:"totalTransportFee"`
	TotalVehiclePrice     float64 `json:"totalVehiclePrice"`
	TotalActivityPrice    float64 `json:"totalActivityPrice"`
	TotalCalculationPrice float64 `json:"totalCalculationPrice"`
	AgentAmount           float64 `json:"agentAmount"`
	TotalPackagePrice     float64 `json:"totalPackagePrice"`
	GstPrice              float64 `json:"gstPrice"`
	FinalPackagePrice     float64 `json:"finalPackagePrice"`
	PerPerson             float64 `json:"perPerson"`
}

// Compute runs the fixed additive price formula: room cost, fees, vehicle
// and activity totals, then commission, GST and the per-person split.
// Rounding happens at exactly three points (agentAmount, gstPrice,
// perPerson), half away from zero; intermediate sums are never re-rounded.
func Compute(input *QuoteInput) (Quote, error) {
	if input == nil {
		return Quote{}, errors.ErrMissingInput
	}

	var quote Quote

	for _, stay := range input.HotelMeals {
		quote.TotalRoomPrice += nonNegative(stay.AdultPrice) +
			nonNegative(stay.ChildPrice) +
			nonNegative(stay.ExtraAdultPrice) +
			nonNegative(stay.AdultGst) +
			nonNegative(stay.ChildGst) +
			nonNegative(stay.ExtraAdultGst)
	}

	for _, vehicle := range input.Vehicles {
		quote.TotalVehiclePrice += numeric(vehicle.Price)
	}

	if input.ActivityPrice > 0 {
		quote.TotalActivityPrice = input.ActivityPrice
	} else {
		for _, day := range input.Activities {
			for _, event := range day.Events {
				quote.TotalActivityPrice += numeric(event.Price)
			}
		}
	}

	quote.TotalAdditionalFee = numeric(input.AdditionalFees)
	quote.TotalTransportFee = numeric(input.TransportFee)

	quote.TotalCalculationPrice = quote.TotalRoomPrice +
		quote.TotalAdditionalFee +
		quote.TotalTransportFee +
		numeric(input.MarketingFee) +
		quote.TotalVehiclePrice +
		quote.TotalActivityPrice

	quote.AgentAmount = math.Round(quote.TotalCalculationPrice * numeric(input.AgentCommissionPer) / 100)
	quote.TotalPackagePrice = quote.TotalCalculationPrice + quote.AgentAmount

	gstPer := numeric(input.GstPer)
	if gstPer <= 0 {
		gstPer = DefaultGstPer
	}
	quote.GstPrice = math.Round(quote.TotalPackagePrice * gstPer / 100)
	quote.FinalPackagePrice = quote.TotalPackagePrice + quote.GstPrice

	if input.TotalAdultCount > 0 {
		quote.PerPerson = math.Round(quote.TotalPackagePrice / float64(input.TotalAdultCount))
	} else {
		quote.PerPerson = quote.TotalPackagePrice
	}

	return quote, nil
}

// nonNegative guards against corrupt upstream data in room components.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func numeric(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
