package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/controllers"
	"github.com/lawconnect/lawconnect/middleware"
)

// SetupConsultationRoutes configures all consultation related routes
func SetupConsultationRoutes(app *fiber.App) {
	consultation := app.Group("/consultations", middleware.Protected(), middleware.ResolveRole())
	consultation.Post("/", middleware.RequireClient(), controllers.CreateConsultation)
	consultation.Get("/", controllers.GetConsultations)
	consultation.Get("/:id", controllers.GetConsultation)
	consultation.Patch("/:id/status", controllers.UpdateConsultationStatus)
	consultation.Patch("/:id/reschedule", controllers.RescheduleConsultation)
	consultation.Patch("/:id", controllers.UpdateConsultation)
}
