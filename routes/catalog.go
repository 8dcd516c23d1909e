package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/controllers"
	"github.com/scholarlink/scholarlink-api/controllers/student"
	"github.com/scholarlink/scholarlink-api/middleware"
)

// SetupCatalogRoutes configures the public browsing surface: services,
// provider availability and reviews. No authentication required.
func SetupCatalogRoutes(app *fiber.App) {
	catalog := app.Group("/catalog")

	catalog.Get("/services", controllers.GetAllServices)
	catalog.Get("/services/:id", controllers.GetService)
	catalog.Get("/providers/:providerId/availability", controllers.GetProviderAvailability)
	catalog.Get("/providers/:providerId/reviews", student.ListProviderReviews)

	// Pricing preview; open so students can compare before signing up
	catalog.Post("/quote", student.QuoteBooking)
}

// SetupNotificationRoutes configures the per-user notification feed
func SetupNotificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications", middleware.Protected())

	notifications.Get("/", controllers.GetMyNotifications)
	notifications.Patch("/:id/read", controllers.MarkNotificationRead)
}
