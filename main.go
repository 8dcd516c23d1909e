package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/scholarlink/scholarlink-api/cron"
	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/redis"
	"github.com/scholarlink/scholarlink-api/routes"
)

func main() {
	app := fiber.New()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ScholarLink API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupStudentRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupPaymentRoutes(app)
	routes.SetupNotificationRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
