package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawconnect/lawconnect/controllers"
	"github.com/lawconnect/lawconnect/middleware"
)

// SetupProfileRoutes configures profile and discovery related routes
func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.Protected())
	profile.Get("/client", controllers.GetClientProfile)
	profile.Patch("/client", controllers.UpdateClientProfile)
	profile.Get("/lawyer", controllers.GetLawyerProfile)
	profile.Patch("/lawyer", controllers.UpdateLawyerProfile)
	profile.Post("/picture", middleware.ResolveRole(), controllers.UpdateProfilePicture)

	// Clients browse lawyers, lawyers browse clients
	app.Get("/lawyers", middleware.Protected(), middleware.ResolveRole(), middleware.RequireClient(), controllers.GetAllLawyers)
	app.Get("/clients", middleware.Protected(), middleware.ResolveRole(), middleware.RequireLawyer(), controllers.GetAllClients)

	app.Get("/match-lawyers", middleware.Protected(), controllers.MatchLawyers)
}
