package student

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// ReviewInput is the review submission payload
type ReviewInput struct {
	ServiceID   uint    `json:"service_id"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
	IsAnonymous bool    `json:"is_anonymous"`
}

// CreateReview posts a review for a service. One review per student per
// service; the review is marked verified when the student has a completed
// booking for it.
func CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(ReviewInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Rating < 1.0 || input.Rating > 5.0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1.0 and 5.0",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	review := models.Review{
		Rating:      input.Rating,
		Comment:     input.Comment,
		ProviderID:  service.ProviderID,
		StudentID:   userID,
		ServiceID:   service.ID,
		IsAnonymous: input.IsAnonymous,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing reviews",
			Error:   err.Error(),
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this service",
		})
	}

	// A completed booking makes the review verified
	var completed models.Booking
	if err := db.DB.
		Where("student_id = ? AND service_id = ? AND status = ?",
			userID, service.ID, models.StatusCompleted).
		Order("scheduled_at desc").
		First(&completed).Error; err == nil {
		review.IsVerified = true
		review.BookingID = &completed.ID
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create review",
			Error:   err.Error(),
		})
	}

	utils.Notify(service.ProviderID, "new_review",
		"New review",
		fmt.Sprintf("Your service %q received a %.1f-star review.", service.Title, review.Rating))

	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListProviderReviews returns a provider's reviews with the average rating.
// Anonymous reviews have the student scrubbed.
func ListProviderReviews(c *fiber.Ctx) error {
	providerID, err := strconv.Atoi(c.Params("providerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	var reviews []models.Review
	if err := db.DB.Preload("Student").Preload("Service").
		Where("provider_id = ?", providerID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reviews",
			Error:   err.Error(),
		})
	}

	var average float64
	for i := range reviews {
		average += reviews[i].Rating
		reviews[i].Student.Password = ""
		reviews[i].Student.OTP = ""
		if reviews[i].IsAnonymous {
			reviews[i].Student = models.User{}
			reviews[i].StudentID = 0
		}
	}
	if len(reviews) > 0 {
		average /= float64(len(reviews))
	}

	return c.JSON(fiber.Map{
		"reviews":        reviews,
		"average_rating": average,
		"total":          len(reviews),
	})
}
