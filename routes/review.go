package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/controllers"
	"github.com/lawconnect/lawconnect/middleware"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App) {
	review := app.Group("/reviews", middleware.Protected(), middleware.ResolveRole())
	review.Post("/", middleware.RequireClient(), controllers.CreateReview)
	review.Get("/", controllers.GetReviews)
	review.Patch("/:id", controllers.UpdateReview)
	review.Delete("/:id", controllers.DeleteReview)
}
