package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/pricing"
	"github.com/scholarlink/scholarlink-api/utils"
)

// CreateMilestone adds a milestone to a full thesis cycle support booking
func CreateMilestone(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := db.DB.Preload("Service").
		Where("id = ? AND provider_id = ?", bookingID, userID).
		First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.Service.Category != pricing.FullThesisCycleSupport {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Milestones are only tracked for full thesis cycle support",
		})
	}
	if booking.IsTerminal() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This engagement is closed",
		})
	}

	milestone := new(models.ThesisMilestone)
	if err := c.BodyParser(milestone); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if milestone.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Milestone title is required",
		})
	}
	milestone.BookingID = booking.ID

	if err := db.DB.Create(milestone).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create milestone",
		})
	}

	utils.Notify(booking.StudentID, "milestone",
		"New milestone added",
		fmt.Sprintf("A new milestone %q was added to your thesis support engagement.", milestone.Title))

	return c.Status(fiber.StatusCreated).JSON(milestone)
}

// UpdateMilestoneStatus advances a milestone's status
func UpdateMilestoneStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var milestone models.ThesisMilestone
	if err := db.DB.Preload("Booking").First(&milestone, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Milestone not found",
		})
	}
	if milestone.Booking.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update milestones on your own engagements",
		})
	}

	type StatusInput struct {
		Status models.MilestoneStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	switch input.Status {
	case models.MilestoneNotStarted, models.MilestoneInProgress, models.MilestoneDone:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown milestone status",
		})
	}

	milestone.Status = input.Status
	if err := db.DB.Save(&milestone).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update milestone",
		})
	}

	if input.Status == models.MilestoneDone {
		utils.Notify(milestone.Booking.StudentID, "milestone",
			"Milestone completed",
			fmt.Sprintf("Milestone %q has been marked as done.", milestone.Title))
	}

	return c.JSON(milestone)
}

// ListMilestones returns the milestones of one of the provider's bookings
func ListMilestones(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := db.DB.Where("id = ? AND provider_id = ?", bookingID, userID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	var milestones []models.ThesisMilestone
	if err := db.DB.Preload("Documents").
		Where("booking_id = ?", booking.ID).
		Order("created_at asc").
		Find(&milestones).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch milestones",
		})
	}
	return c.JSON(milestones)
}
