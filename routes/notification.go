package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/controllers"
	"github.com/lawconnect/lawconnect/middleware"
)

// SetupNotificationRoutes configures all notification related routes
func SetupNotificationRoutes(app *fiber.App) {
	notification := app.Group("/notifications", middleware.Protected())
	notification.Get("/", controllers.GetNotifications)
	notification.Patch("/:id/read", controllers.MarkNotificationRead)
}
