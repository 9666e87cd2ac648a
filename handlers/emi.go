package handlers

import (
	stderrors "errors"
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"travel-webapp/database"
	"travel-webapp/emi"
	"travel-webapp/errors"
	"travel-webapp/model"
	"travel-webapp/paystore"
	"travel-webapp/receipt"
)

type initializeEmiRequest struct {
	Tenure        int   `json:"tenure" validate:"required"`
	MonthlyAmount int64 `json:"monthlyAmount" validate:"omitempty,min=1"`
}

// InitializeEmi attaches an installment schedule to an existing pending
// booking, built from its final price.
func InitializeEmi(c *fiber.Ctx) error {
	booking, dbErr := database.GetBooking(c.Params("bookingId"))
	if dbErr != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(dbErr))
	}
	if !canAccessBooking(c, booking) {
		return errors.RaisePermissionsError(c, "booking belongs to another customer")
	}
	if booking.Status != model.BookingStatusPending {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot initialize EMI for booking in status %v", booking.Status))
	}
	if booking.Emi != nil {
		return errors.RaiseBadRequestError(c, "booking already has an EMI plan")
	}

	req := new(initializeEmiRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for EMI parameters: %v", err))
	}
	if err := validateStruct(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for EMI parameters: %v", err))
	}

	totalAmount := int64(math.Round(booking.FinalPrice))

	var plan emi.Plan
	var emiErr error
	if req.MonthlyAmount > 0 {
		plan, emiErr = emi.BuildScheduleWithMonthly(totalAmount, req.MonthlyAmount, req.Tenure, time.Now())
	} else {
		plan, emiErr = emi.BuildSchedule(totalAmount, req.Tenure, time.Now())
	}
	if emiErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(emiErr))
	}

	booking.Emi = &plan
	booking.UpdatedAt = time.Now().Format(time.RFC3339)

	updateErr := database.UpdateCollectionItem(booking.Id, booking, database.BookingsCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	zap.L().Info("emi plan initialized",
		zap.String("bookingId", booking.Id.Hex()),
		zap.Int("tenure", plan.TotalTenure),
		zap.Int64("monthlyAmount", plan.MonthlyAmount))

	return sendJSON(c, plan)
}

type payInstallmentRequest struct {
	InstallmentNumber int `json:"installmentNumber" validate:"required,min=1"`
}

// PayInstallment marks one installment paid: read the booking snapshot,
// advance the plan, persist the result, and leave a payment-session record
// for reconciliation.
func PayInstallment(c *fiber.Ctx) error {
	booking, dbErr := database.GetBooking(c.Params("bookingId"))
	if dbErr != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(dbErr))
	}
	if !canAccessBooking(c, booking) {
		return errors.RaisePermissionsError(c, "booking belongs to another customer")
	}
	if booking.Emi == nil {
		return errors.RaiseBadRequestError(c, "booking has no EMI plan")
	}

	req := new(payInstallmentRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for payment parameters: %v", err))
	}
	if err := validateStruct(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for payment parameters: %v", err))
	}

	updated, advErr := emi.Advance(*booking.Emi, req.InstallmentNumber)
	if advErr != nil {
		if stderrors.Is(advErr, errors.ErrInstallmentNotFound) {
			return errors.RaiseNotFoundError(c, fmt.Sprint(advErr))
		}
		return errors.RaiseBadRequestError(c, fmt.Sprint(advErr))
	}

	booking.Emi = &updated
	booking.UpdatedAt = time.Now().Format(time.RFC3339)

	updateErr := database.UpdateCollectionItem(booking.Id, booking, database.BookingsCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	if database.Payments != nil {
		var amount int64
		for _, inst := range updated.Installments {
			if inst.InstallmentNumber == req.InstallmentNumber {
				amount = inst.Amount
				break
			}
		}
		record := paystore.PaymentRecord{
			Id:                uuid.New().String(),
			BookingId:         booking.Id.Hex(),
			InstallmentNumber: req.InstallmentNumber,
			Amount:            amount,
			Status:            paystore.SessionCaptured,
			CreatedAt:         time.Now(),
		}
		if putErr := database.Payments.Put(c.Context(), record); putErr != nil {
			// the installment itself is already persisted on the booking
			zap.L().Warn("failed to record payment session",
				zap.String("bookingId", record.BookingId),
				zap.Error(putErr))
		}
	}

	return sendJSON(c, updated)
}

func GetEmiSchedule(c *fiber.Ctx) error {
	booking, dbErr := database.GetBooking(c.Params("bookingId"))
	if dbErr != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(dbErr))
	}
	if !canAccessBooking(c, booking) {
		return errors.RaisePermissionsError(c, "booking belongs to another customer")
	}
	if booking.Emi == nil {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("booking %v has no EMI plan", c.Params("bookingId")))
	}

	return sendJSON(c, booking.Emi)
}

// DownloadReceipt renders the payments-to-date receipt PDF.
func DownloadReceipt(c *fiber.Ctx) error {
	booking, dbErr := database.GetBooking(c.Params("bookingId"))
	if dbErr != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(dbErr))
	}
	if !canAccessBooking(c, booking) {
		return errors.RaisePermissionsError(c, "booking belongs to another customer")
	}

	packageName := ""
	if packages, pkgErr := database.GetPackages(true, "_id", booking.PackageRootId.Hex()); pkgErr == nil && len(packages) > 0 {
		packageName = packages[0].Name
	}

	pdfBytes, filename, buildErr := receipt.Build(receipt.Data{
		BookingId:    booking.Id.Hex(),
		CustomerName: booking.UserId,
		PackageName:  packageName,
		TravelDate:   booking.TravelDate,
		AdultCount:   booking.AdultCount,
		ChildCount:   booking.ChildCount,
		TotalPrice:   booking.TotalPackagePrice,
		GstPrice:     booking.GstPrice,
		FinalPrice:   booking.FinalPrice,
		Plan:         booking.Emi,
		GeneratedAt:  time.Now(),
	})
	if buildErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to build receipt: %v", buildErr))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
