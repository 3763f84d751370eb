package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/controllers"
	"github.com/lawconnect/lawconnect/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())
	booking.Post("/", controllers.CreateBooking)
	booking.Get("/client", controllers.GetClientBookings)
	booking.Get("/lawyer", controllers.GetLawyerBookings)
	booking.Patch("/:id", controllers.UpdateBookingStatus)
	booking.Delete("/:id", controllers.DeleteBooking)
}
