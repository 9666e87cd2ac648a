package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-webapp/errors"
)

func TestComputeMissingInput(t *testing.T) {
	_, err := Compute(nil)
	assert.ErrorIs(t, err, errors.ErrMissingInput)
}

func TestComputeFullBreakdown(t *testing.T) {
	input := &QuoteInput{
		HotelMeals: []HotelMealCost{
			{AdultPrice: 8000},
		},
		Vehicles:           []VehicleLine{{Name: "Innova", Price: 1200}},
		AdditionalFees:     500,
		TransportFee:       300,
		AgentCommissionPer: 10,
		GstPer:             5,
		TotalAdultCount:    2,
	}

	quote, err := Compute(input)
	require.NoError(t, err)

	assert.Equal(t, float64(8000), quote.TotalRoomPrice)
	assert.Equal(t, float64(1200), quote.TotalVehiclePrice)
	assert.Equal(t, float64(0), quote.TotalActivityPrice)
	assert.Equal(t, float64(10000), quote.TotalCalculationPrice)
	assert.Equal(t, float64(1000), quote.AgentAmount)
	assert.Equal(t, float64(11000), quote.TotalPackagePrice)
	assert.Equal(t, float64(550), quote.GstPrice)
	assert.Equal(t, float64(11550), quote.FinalPackagePrice)
	assert.Equal(t, float64(5500), quote.PerPerson)
}

func TestComputeRoomComponentsSummedAndClamped(t *testing.T) {
	input := &QuoteInput{
		HotelMeals: []HotelMealCost{
			{AdultPrice: 1000, ChildPrice: 500, ExtraAdultPrice: 300, AdultGst: 50, ChildGst: 25, ExtraAdultGst: 15},
			{AdultPrice: 2000, ChildPrice: -700, AdultGst: math.NaN()}, // corrupt upstream data
		},
		TotalAdultCount: 2,
	}

	quote, err := Compute(input)
	require.NoError(t, err)

	// negative and NaN components count as zero
	assert.Equal(t, float64(1890+2000), quote.TotalRoomPrice)
}

func TestComputeActivityOverrideWinsOverEvents(t *testing.T) {
	activities := []ActivityDay{
		{Day: 1, Events: []ActivityEvent{{Name: "rafting", Price: 700}, {Name: "trek", Price: 300}}},
		{Day: 2, Events: []ActivityEvent{{Name: "safari", Price: 1500}}},
	}

	summed, err := Compute(&QuoteInput{Activities: activities, TotalAdultCount: 1})
	require.NoError(t, err)
	assert.Equal(t, float64(2500), summed.TotalActivityPrice)

	overridden, err := Compute(&QuoteInput{Activities: activities, ActivityPrice: 1800, TotalAdultCount: 1})
	require.NoError(t, err)
	assert.Equal(t, float64(1800), overridden.TotalActivityPrice)
}

func TestComputeGstDefaultsToFivePercent(t *testing.T) {
	quote, err := Compute(&QuoteInput{
		HotelMeals:      []HotelMealCost{{AdultPrice: 10000}},
		TotalAdultCount: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(500), quote.GstPrice)
	assert.Equal(t, float64(10500), quote.FinalPackagePrice)
}

func TestComputePerPersonWithoutAdults(t *testing.T) {
	quote, err := Compute(&QuoteInput{
		HotelMeals: []HotelMealCost{{AdultPrice: 9000}},
	})
	require.NoError(t, err)

	// no division when the adult count is absent or zero
	assert.Equal(t, quote.TotalPackagePrice, quote.PerPerson)
}

func TestComputeRoundingPoints(t *testing.T) {
	quote, err := Compute(&QuoteInput{
		HotelMeals:         []HotelMealCost{{AdultPrice: 1001}},
		AgentCommissionPer: 3.3, // 33.033 -> 33
		GstPer:             7.7,
		TotalAdultCount:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(33), quote.AgentAmount)
	assert.Equal(t, math.Round(quote.TotalPackagePrice*7.7/100), quote.GstPrice)
	assert.Equal(t, math.Round(quote.TotalPackagePrice/3), quote.PerPerson)
	assert.Equal(t, quote.TotalPackagePrice+quote.GstPrice, quote.FinalPackagePrice)
}

func TestComputeEmptyInputStillQuotes(t *testing.T) {
	quote, err := Compute(&QuoteInput{TotalAdultCount: 2})
	require.NoError(t, err)

	assert.Equal(t, float64(0), quote.TotalCalculationPrice)
	assert.Equal(t, float64(0), quote.FinalPackagePrice)
}
