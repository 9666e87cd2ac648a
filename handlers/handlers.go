package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"travel-webapp/errors"
	"travel-webapp/model"
)

var validate = validator.New()

func isAdminRole(c *fiber.Ctx) bool {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == model.RoleAdmin
}

func currentLogin(c *fiber.Ctx) string {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	login, _ := claims["username"].(string)
	return login
}

// canAccessBooking allows the owner and admins.
func canAccessBooking(c *fiber.Ctx, booking model.Booking) bool {
	return isAdminRole(c) || (currentLogin(c) != "" && currentLogin(c) == booking.UserId)
}

// validateStruct runs the request DTO through the validator and folds the
// field errors into one message for the response envelope.
func validateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var msgs []string
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func sendJSON(c *fiber.Ctx, v interface{}) error {
	payload, err := json.MarshalIndent(v, "", "	")
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("json serialization error: %v", err))
	}
	return c.SendString(string(payload))
}
