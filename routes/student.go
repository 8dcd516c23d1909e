package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/controllers"
	"github.com/scholarlink/scholarlink-api/controllers/student"
	"github.com/scholarlink/scholarlink-api/middleware"
)

// SetupStudentRoutes configures the student side: bookings, reviews,
// milestone documents and messaging.
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/student", middleware.Protected(), middleware.RequireRole("student"))

	// Profile
	studentGroup.Get("/profile", student.GetMyProfile)
	studentGroup.Patch("/profile", student.UpdateMyProfile)
	studentGroup.Post("/profile/avatar", student.UpdateAvatar)

	// Bookings
	studentGroup.Post("/bookings/quote", student.QuoteBooking)
	studentGroup.Post("/bookings", student.CreateBooking)
	studentGroup.Get("/bookings", student.ListMyBookings)
	studentGroup.Post("/bookings/:id/cancel", student.CancelBooking)

	// Thesis milestones
	studentGroup.Get("/bookings/:bookingId/milestones", student.ListMilestones)
	studentGroup.Post("/milestones/:id/documents", student.UploadMilestoneDocument)

	// Reviews
	studentGroup.Post("/reviews", student.CreateReview)

	// Messaging
	studentGroup.Get("/conversations", controllers.ListConversations)
	studentGroup.Get("/conversations/:id/messages", controllers.GetMessages)
	studentGroup.Post("/messages", controllers.SendMessage)
}
