package router

import (
	"travel-webapp/handlers"
	"travel-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())

	//Login
	login := api.Group("/login")
	login.Post("/", handlers.Login)

	//Package browsing and quoting are public
	browse := api.Group("/package")
	browse.Get("/", handlers.GetPackages)
	browse.Get("/:id", handlers.GetPackage)
	browse.Post("/:id/quote", handlers.QuotePackage)

	authorized := api.Group("/", middleware.Authorize())

	//Package management (admin)
	pkg := authorized.Group("/package")
	pkg.Post("/", handlers.CreateNewPackage)
	pkg.Put("/:id", handlers.UpdatePackage)
	pkg.Delete("/:id", handlers.DeletePackage)

	//Booking
	booking := authorized.Group("/booking")
	booking.Get("/", handlers.GetBookings)
	booking.Get("/:bookingId", handlers.GetBooking)
	booking.Post("/", handlers.CreateBooking)
	booking.Patch("/:bookingId/status", handlers.UpdateBookingStatus)

	//EMI
	emi := booking.Group("/:bookingId/emi")
	emi.Get("/", handlers.GetEmiSchedule)
	emi.Post("/initialize", handlers.InitializeEmi)
	emi.Post("/pay", handlers.PayInstallment)

	booking.Get("/:bookingId/receipt", handlers.DownloadReceipt)
}
