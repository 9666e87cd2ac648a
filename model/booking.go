package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/emi"
)

// Booking statuses. "pending" is set at checkout; further transitions come
// from payment webhooks or admin actions, never from the calculators.
const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
	BookingStatusApproval  = "approval"
	BookingStatusWaiting   = "waiting"
	BookingStatusFailed    = "failed"
	BookingStatusCancel    = "cancel"
)

// Booking is one customer's purchase of a package on a travel date, with
// the quote totals copied in at creation and an optional embedded EMI plan.
type Booking struct {
	Id                primitive.ObjectID `json:"_id" bson:"_id"`
	PackageRootId     primitive.ObjectID `json:"packageRootId" bson:"packageRootId"`
	UserId            string             `json:"userId" bson:"userId"`
	TravelDate        string             `json:"travelDate" bson:"travelDate"`
	AdultCount        int                `json:"adultCount" bson:"adultCount"`
	ChildCount        int                `json:"childCount" bson:"childCount"`
	TotalPackagePrice float64            `json:"totalPackagePrice" bson:"totalPackagePrice"`
	GstPrice          float64            `json:"gstPrice" bson:"gstPrice"`
	FinalPrice        float64            `json:"finalPrice" bson:"finalPrice"`
	Status            string             `json:"status" bson:"status"`
	Emi               *emi.Plan          `json:"emi,omitempty" bson:"emi,omitempty"`
	BookedAt          string             `json:"booked_at" bson:"booked_at"`
	UpdatedAt         string             `json:"updated_at" bson:"updated_at"`
}

// ValidBookingStatus reports whether s is one of the modeled statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusCompleted, BookingStatusApproval,
		BookingStatusWaiting, BookingStatusFailed, BookingStatusCancel:
		return true
	}
	return false
}
