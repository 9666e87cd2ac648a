package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"travel-webapp/config"
	"travel-webapp/database"
)

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func Login(c *fiber.Ctx) error {
	type Credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error on login request when parse credentials",
			"data":    err})
	}

	user, geterr := database.GetUserData(creds.Login)
	if geterr != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error on login request when comparing user data",
			"data":    fmt.Sprintf("%v", geterr)})
	}

	if !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		zap.L().Warn("failed login attempt", zap.String("login", creds.Login))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid password",
			"data":    nil})
	}

	expiryHours := 8
	if config.C != nil && config.C.JWT.ExpiryHours > 0 {
		expiryHours = config.C.JWT.ExpiryHours
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = user.Login
	claims["exp"] = time.Now().Add(time.Hour * time.Duration(expiryHours)).Unix()
	claims["role"] = user.Role

	sign := config.JWTSecret()
	if sign == "" {
		zap.L().Error("jwt signing secret is not configured")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}
