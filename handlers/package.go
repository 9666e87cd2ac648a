package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-webapp/database"
	"travel-webapp/errors"
	"travel-webapp/model"
	"travel-webapp/pricing"
)

func GetPackages(c *fiber.Ctx) error {
	packages, dbErr := database.GetPackages(isAdminRole(c), "")
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}

	return sendJSON(c, packages)
}

func GetPackage(c *fiber.Ctx) error {
	packages, dbErr := database.GetPackages(isAdminRole(c), "_id", c.Params("id"))
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if len(packages) == 0 {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", c.Params("id")))
	}

	return sendJSON(c, packages[0])
}

func CreateNewPackage(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	newPackage := new(model.HolidayPackage)
	if jsonErr := c.BodyParser(newPackage); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable package parameters: %v", jsonErr))
	}
	newPackage.Id = primitive.NewObjectID()
	newPackage.Name = strings.TrimSpace(newPackage.Name)
	newPackage.IsActive = true

	validationErr := validatePackageInfoInput(*newPackage)
	if validationErr != nil {
		return errors.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for package parameters: %v", validationErr))
	}

	writeErr := database.WriteToCollection(*newPackage, database.PackagesCollection)
	if writeErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	return sendJSON(c, newPackage)
}

func UpdatePackage(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}

	packages, dbErr := database.GetPackages(true, "_id", c.Params("id"))
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if len(packages) == 0 {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", c.Params("id")))
	}

	updatedPackage := new(model.HolidayPackage)
	if jsonErr := c.BodyParser(updatedPackage); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable package parameters: %v", jsonErr))
	}
	updatedPackage.Id = packages[0].Id
	updatedPackage.Name = strings.TrimSpace(updatedPackage.Name)

	if updatedPackage.Name != packages[0].Name {
		validationErr := validatePackageInfoInput(*updatedPackage)
		if validationErr != nil {
			return errors.RaiseBadRequestError(c,
				fmt.Sprintf("incorrect input for package parameters: %v", validationErr))
		}
	}

	updateErr := database.UpdateCollectionItem(updatedPackage.Id, updatedPackage, database.PackagesCollection)
	if updateErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", updateErr))
	}

	return sendJSON(c, updatedPackage)
}

func DeletePackage(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaisePermissionsError(c, "only admin can perform this operation")
	}
	deleteErr := database.DeleteFromCollection(c.Params("id"), database.PackagesCollection)
	if deleteErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("failed to delete: %v", deleteErr))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "entity deleted",
		"data":    fmt.Sprintf("package with id %v was deleted", c.Params("id"))})
}

// quoteRequest is the single compatibility boundary for the legacy field
// spellings (noOfAdult, transPer, marketingPer): they are accepted here
// and mapped to the canonical calculator input, never used past this DTO.
type quoteRequest struct {
	ActivityPrice      float64 `json:"activityPrice"`
	AdditionalFees     float64 `json:"additionalFees"`
	TransPer           float64 `json:"transPer"`
	MarketingPer       float64 `json:"marketingPer"`
	AgentCommissionPer float64 `json:"agentCommissionPer"`
	GstPer             float64 `json:"gstPer"`
	TotalAdultCount    int     `json:"totalAdultCount"`
	NoOfAdult          int     `json:"noOfAdult"`
}

func (r quoteRequest) adultCount() int {
	if r.TotalAdultCount > 0 {
		return r.TotalAdultCount
	}
	if r.NoOfAdult > 0 {
		return r.NoOfAdult
	}
	return pricing.DefaultAdultCount
}

// applyTo overlays nonzero request fields on the input built from the
// stored package.
func (r quoteRequest) applyTo(input *pricing.QuoteInput) {
	if r.ActivityPrice > 0 {
		input.ActivityPrice = r.ActivityPrice
	}
	if r.AdditionalFees > 0 {
		input.AdditionalFees = r.AdditionalFees
	}
	if r.TransPer > 0 {
		input.TransportFee = r.TransPer
	}
	if r.MarketingPer > 0 {
		input.MarketingFee = r.MarketingPer
	}
	if r.AgentCommissionPer > 0 {
		input.AgentCommissionPer = r.AgentCommissionPer
	}
	if r.GstPer > 0 {
		input.GstPer = r.GstPer
	}
}

// QuotePackage computes a fresh price breakdown for a stored package.
// Nothing is persisted: a quote only becomes durable when a booking
// copies its totals at checkout.
func QuotePackage(c *fiber.Ctx) error {
	packages, dbErr := database.GetPackages(isAdminRole(c), "_id", c.Params("id"))
	if dbErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if len(packages) == 0 {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("package %v not found", c.Params("id")))
	}

	req := quoteRequest{}
	if len(c.Body()) > 0 {
		if jsonErr := c.BodyParser(&req); jsonErr != nil {
			return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable quote parameters: %v", jsonErr))
		}
	}

	input := packages[0].QuoteInput(req.adultCount())
	req.applyTo(input)

	quote, calcErr := pricing.Compute(input)
	if calcErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprint(calcErr))
	}

	return sendJSON(c, quoteResponse(quote))
}

// quoteResponse emits canonical field names plus the one legacy
// AgentAmount alias older clients still read.
func quoteResponse(q pricing.Quote) fiber.Map {
	return fiber.Map{
		"totalRoomPrice":        q.TotalRoomPrice,
		"totalAdditionalFee":    q.TotalAdditionalFee,
		"totalTransportFee":     q.TotalTransportFee,
		"totalVehiclePrice":     q.TotalVehiclePrice,
		"totalActivityPrice":    q.TotalActivityPrice,
		"totalCalculationPrice": q.TotalCalculationPrice,
		"agentAmount":           q.AgentAmount,
		"AgentAmount":           q.AgentAmount,
		"totalPackagePrice":     q.TotalPackagePrice,
		"gstPrice":              q.GstPrice,
		"finalPackagePrice":     q.FinalPackagePrice,
		"perPerson":             q.PerPerson,
	}
}

func validatePackageInfoInput(holidayPackage model.HolidayPackage) error {
	if len(holidayPackage.Name) < 2 {
		return fmt.Errorf("package name is too short")
	}

	nameExists, err := database.IfPackageNameAlreadyExist(holidayPackage.Name)
	if err != nil {
		return err
	}
	if nameExists {
		return fmt.Errorf("package name already exist")
	}

	return nil
}
