package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/pricing"
)

// HolidayPackage is one sellable trip: hotel stays, vehicle transfers and
// per-day activities, plus the fee percentages its quotes are computed with.
type HolidayPackage struct {
	Id                 primitive.ObjectID      `json:"_id" bson:"_id"`
	Name               string                  `json:"name" bson:"name"`
	Destination        string                  `json:"destination" bson:"destination"`
	Days               int                     `json:"days" bson:"days"`
	Nights             int                     `json:"nights" bson:"nights"`
	HotelMeals         []pricing.HotelMealCost `json:"hotelMeal" bson:"hotelMeal"`
	Vehicles           []pricing.VehicleLine   `json:"vehicleDetail" bson:"vehicleDetail"`
	Activities         []pricing.ActivityDay   `json:"activity" bson:"activity"`
	ActivityPrice      float64                 `json:"activityPrice" bson:"activityPrice"`
	AdditionalFees     float64                 `json:"additionalFees" bson:"additionalFees"`
	TransportFee       float64                 `json:"transportFee" bson:"transportFee"`
	MarketingFee       float64                 `json:"marketingFee" bson:"marketingFee"`
	AgentCommissionPer float64                 `json:"agentCommissionPer" bson:"agentCommissionPer"`
	GstPer             float64                 `json:"gstPer" bson:"gstPer"`
	IsActive           bool                    `json:"isActive" bson:"isActive"`
}

// QuoteInput assembles the calculator input from the stored package and
// the adult count chosen at request time.
func (p HolidayPackage) QuoteInput(totalAdultCount int) *pricing.QuoteInput {
	return &pricing.QuoteInput{
		HotelMeals:         p.HotelMeals,
		Vehicles:           p.Vehicles,
		Activities:         p.Activities,
		ActivityPrice:      p.ActivityPrice,
		AdditionalFees:     p.AdditionalFees,
		TransportFee:       p.TransportFee,
		MarketingFee:       p.MarketingFee,
		AgentCommissionPer: p.AgentCommissionPer,
		GstPer:             p.GstPer,
		TotalAdultCount:    totalAdultCount,
	}
}
