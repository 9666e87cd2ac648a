package handlers

import (
	"travel-webapp/router"
	"bytes"
	"io"
	"strings"

	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type Test struct {
	description  string
	method       string
	route        string
	bodyinput    []byte
	expectedCode int
}

// Routes behind the JWT middleware must reject anonymous requests before
// any handler (and any database access) runs.
func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	tests := []Test{
		{
			description:  "list bookings anonymous",
			method:       "GET",
			route:        "/booking",
			bodyinput:    nil,
			expectedCode: 400,
		},
		{
			description:  "create booking anonymous",
			method:       "POST",
			route:        "/booking",
			bodyinput:    []byte("{\"packageId\":\"abc\",\"travelDate\":\"2024-07-15\"}"),
			expectedCode: 400,
		},
		{
			description:  "pay installment anonymous",
			method:       "POST",
			route:        "/booking/65f1a2b3c4d5e6f7a8b9c0d1/emi/pay",
			bodyinput:    []byte("{\"installmentNumber\":1}"),
			expectedCode: 400,
		},
		{
			description:  "create package anonymous",
			method:       "POST",
			route:        "/package",
			bodyinput:    []byte("{\"name\":\"Goa Getaway\"}"),
			expectedCode: 400,
		},
		{
			description:  "delete package anonymous",
			method:       "DELETE",
			route:        "/package/65f1a2b3c4d5e6f7a8b9c0d1",
			bodyinput:    nil,
			expectedCode: 400,
		}}

	app := fiber.New()
	router.SetupRoutes(app)

	for _, test := range tests {
		req, _ := http.NewRequest(
			test.method,
			test.route,
			bytes.NewBuffer(test.bodyinput))
		req.Header.Set("Content-Type", "application/json")

		res, err := app.Test(req, -1)
		if err != nil {
			assert.Fail(t, "Invalid test, request failed", test.description)
			continue
		}

		body := new(strings.Builder)
		_, err = io.Copy(body, res.Body)
		if err != nil {
			assert.Fail(t, "Invalid test, error occured while body parsing")
		}

		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
		assert.Containsf(t, body.String(), "JWT", test.description)
	}
}

// Requests with garbage tokens are rejected as unauthorized.
func TestProtectedRoutesRejectBadToken(t *testing.T) {
	app := fiber.New()
	router.SetupRoutes(app)

	req, _ := http.NewRequest("GET", "/booking", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	assert.Equal(t, 401, res.StatusCode)
}
