package handlers

import (
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"travel-webapp/database"
	"travel-webapp/emi"
	"travel-webapp/errors"
	"travel-webapp/model"
	"travel-webapp/pricing"
)

func GetBookings(c *fiber.Ctx) error {
	owner := currentLogin(c)
	if isAdminRole(c) {
		owner = "" // admins see everything
	}

	bookings, dbErr := database.GetBookings(owner)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return sendJSON(c, bookings)
}

func GetBooking(c *fiber.Ctx) error {
	booking, dbErr := database.GetBooking(c.Params("bookingId"))
	if dbErr != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(dbErr))
	}
	if !canAccessBooking(c, booking) {
		return errors.RaisePermissionsError(c, "booking belongs to another customer")
	}

	return sendJSON(c, booking)
}

type createBookingRequest struct {
	PackageId  string `json:"packageId" validate:"required"`
	TravelDate string `json:"travelDate" validate:"required"`
	AdultCount int    `json:"adultCount" validate:"omitempty,min=1"`
	NoOfAdult  int    `json:"noOfAdult"` // legacy spelling, mapped below
	ChildCount int    `json:"childCount" validate:"omitempty,min=0"`
	EmiTenure  int    `json:"emiTenure"`
}

func (r createBookingRequest) adultCount() int {
	if r.AdultCount > 0 {
		return r.AdultCount
	}
	if r.NoOfAdult > 0 {
		return r.NoOfAdult
	}
	return pricing.DefaultAdultCount
}

// CreateBooking is checkout: quote the package, copy the totals into a new
// pending booking, and optionally attach an EMI schedule when a tenure was
// chosen.
func CreateBooking(c *fiber.Ctx) error {
	req := new(createBookingRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for booking parameters: %v", err))
	}
	if err := validateStruct(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for booking parameters: %v", err))
	}

	packages, dbErr := database.GetPackages(false, "_id", req.PackageId)
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if len(packages) == 0 {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", req.PackageId))
	}

	quote, calcErr := pricing.Compute(packages[0].QuoteInput(req.adultCount()))
	if calcErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(calcErr))
	}

	currentTime := time.Now().Format(time.RFC3339)
	booking := model.Booking{
		Id:                primitive.NewObjectID(),
		PackageRootId:     packages[0].Id,
		UserId:            currentLogin(c),
		TravelDate:        req.TravelDate,
		AdultCount:        req.adultCount(),
		ChildCount:        req.ChildCount,
		TotalPackagePrice: quote.TotalPackagePrice,
		GstPrice:          quote.GstPrice,
		FinalPrice:        quote.FinalPackagePrice,
		Status:            model.BookingStatusPending,
		BookedAt:          currentTime,
		UpdatedAt:         currentTime,
	}

	if req.EmiTenure != 0 {
		plan, emiErr := emi.BuildSchedule(int64(math.Round(quote.FinalPackagePrice)), req.EmiTenure, time.Now())
		if emiErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprint(emiErr))
		}
		booking.Emi = &plan
	}

	writeErr := database.WriteToCollection(booking, database.BookingsCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	zap.L().Info("booking created",
		zap.String("bookingId", booking.Id.Hex()),
		zap.String("packageId", booking.PackageRootId.Hex()),
		zap.Bool("emi", booking.Emi != nil))

	return sendJSON(c, booking)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateBookingStatus applies an externally decided transition (payment
// webhook outcome or admin action); the service never derives statuses
// itself.
func UpdateBookingStatus(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	booking, dbErr := database.GetBooking(c.Params("bookingId"))
	if dbErr != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(dbErr))
	}

	req := new(updateStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for status update: %v", err))
	}
	if err := validateStruct(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for status update: %v", err))
	}
	if !model.ValidBookingStatus(req.Status) {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown booking status %v", req.Status))
	}

	booking.Status = req.Status
	booking.UpdatedAt = time.Now().Format(time.RFC3339)

	updateErr := database.UpdateCollectionItem(booking.Id, booking, database.BookingsCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return sendJSON(c, booking)
}
