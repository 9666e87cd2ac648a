package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Domain error kinds surfaced by the pricing and EMI cores. Handlers map
// them to HTTP statuses; the cores themselves never touch the transport.
var (
	ErrMissingInput        = errors.New("missing package data for price calculation")
	ErrInvalidTenure       = errors.New("selected tenure is not supported, must be between 3 and 16 months")
	ErrInstallmentNotFound = errors.New("installment not found in the schedule")
	ErrAllInstallmentsPaid = errors.New("all installments are already paid, nothing to pay")
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaisePermissionsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}
