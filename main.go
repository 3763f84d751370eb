package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lawconnect/lawconnect/cron"

	"github.com/lawconnect/lawconnect/db"

	"github.com/lawconnect/lawconnect/redis"

	"github.com/lawconnect/lawconnect/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupConsultationRoutes(app)
	routes.SetupNotificationRoutes(app)
	routes.SetupReviewRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
