package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/controllers"
	"github.com/scholarlink/scholarlink-api/middleware"
)

// SetupAdminRoutes configures the moderation surface
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole("admin"))

	admin.Post("/providers/:id/verify", controllers.VerifyProvider)
	admin.Post("/users/:id/suspend", controllers.SuspendUser)
	admin.Post("/services/:id/deactivate", controllers.ForceDeactivateService)

	admin.Get("/bookings", controllers.GetAllBookings)
	admin.Get("/bookings/:id", controllers.GetBooking)

	admin.Get("/withdrawals", controllers.ListWithdrawals)
	admin.Post("/withdrawals/:id/resolve", controllers.ResolveWithdrawal)
}

// SetupPaymentRoutes configures the payment gateway callback. The gateway
// authenticates with a shared reference, not a user token.
func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/payments/callback", controllers.PaymentCallback)
}
