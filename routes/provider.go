package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/controllers"
	"github.com/scholarlink/scholarlink-api/controllers/provider"
	"github.com/scholarlink/scholarlink-api/middleware"
)

// SetupProviderRoutes configures everything a consultant manages: services,
// pricing tiers, availability, bookings, milestones and earnings.
func SetupProviderRoutes(app *fiber.App) {
	providerGroup := app.Group("/provider", middleware.Protected(), middleware.RequireRole("provider"))

	// Profile
	providerGroup.Get("/profile", provider.GetMyProfile)
	providerGroup.Patch("/profile", provider.UpdateMyProfile)
	providerGroup.Post("/profile/avatar", provider.UpdateAvatar)

	// Services and pricing
	providerGroup.Get("/services", provider.ListMyServices)
	providerGroup.Post("/services", provider.CreateService)
	providerGroup.Patch("/services/:id", provider.UpdateService)
	providerGroup.Put("/services/:id/duration", provider.SetDurationChoice)
	providerGroup.Put("/services/:id/prices", provider.SetPrice)
	providerGroup.Delete("/services/:id/prices/:level", provider.RemovePrice)
	providerGroup.Put("/services/:id/add-ons", provider.PutAddOn)
	providerGroup.Delete("/services/:id/add-ons/:name", provider.RemoveAddOn)
	providerGroup.Put("/services/:id/category", provider.SwitchCategory)
	providerGroup.Post("/services/:id/publish", provider.PublishService)
	providerGroup.Post("/services/:id/deactivate", provider.DeactivateService)
	providerGroup.Delete("/services/:id", provider.DeleteService)

	// Weekly availability
	providerGroup.Post("/availability", controllers.CreateWeeklySlot)
	providerGroup.Patch("/availability/:id", controllers.UpdateWeeklySlot)
	providerGroup.Delete("/availability/:id", controllers.DeleteWeeklySlot)

	// Bookings
	providerGroup.Get("/bookings/upcoming", provider.GetUpcomingBookings)
	providerGroup.Get("/bookings/history", provider.GetBookingHistory)
	providerGroup.Post("/bookings/:id/confirm", provider.ConfirmBooking)
	providerGroup.Post("/bookings/:id/cancel", provider.CancelBooking)
	providerGroup.Post("/bookings/:id/complete", provider.CompleteBooking)
	providerGroup.Post("/bookings/:id/no-show", provider.MarkNoShow)

	// Thesis milestones
	providerGroup.Post("/bookings/:bookingId/milestones", provider.CreateMilestone)
	providerGroup.Get("/bookings/:bookingId/milestones", provider.ListMilestones)
	providerGroup.Patch("/milestones/:id/status", provider.UpdateMilestoneStatus)

	// Dashboard and earnings
	providerGroup.Get("/dashboard", provider.GetDashboardOverview)
	providerGroup.Get("/dashboard/recent", provider.GetRecentBookings)
	providerGroup.Get("/earnings", provider.GetEarnings)
	providerGroup.Post("/withdrawals", provider.RequestWithdrawal)
	providerGroup.Get("/withdrawals", provider.ListMyWithdrawals)

	// Messaging (shared handlers; side resolved from the role claim)
	providerGroup.Get("/conversations", controllers.ListConversations)
	providerGroup.Get("/conversations/:id/messages", controllers.GetMessages)
	providerGroup.Post("/messages", controllers.SendMessage)
}
