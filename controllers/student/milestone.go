package student

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// ListMilestones returns the milestone plan for the student's own booking
func ListMilestones(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := db.DB.
		Where("id = ? AND student_id = ?", bookingID, userID).
		First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	var milestones []models.ThesisMilestone
	if err := db.DB.Preload("Documents").
		Where("booking_id = ?", booking.ID).
		Order("due_date asc").
		Find(&milestones).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch milestones",
			Error:   err.Error(),
		})
	}
	return c.JSON(milestones)
}

// UploadMilestoneDocument attaches a document (draft chapter, dataset, notes)
// to a milestone on the student's booking
func UploadMilestoneDocument(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	milestoneID := c.Params("id")

	var milestone models.ThesisMilestone
	if err := db.DB.Preload("Booking").First(&milestone, milestoneID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Milestone not found",
		})
	}
	if milestone.Booking.StudentID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You do not have access to this milestone",
		})
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Document file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file,
		fmt.Sprintf("milestone-%d-%s", milestone.ID, fileHeader.Filename), "milestone-documents")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload document",
		})
	}

	document := models.MilestoneDocument{
		MilestoneID:  milestone.ID,
		FileName:     fileHeader.Filename,
		FileURL:      url,
		UploadedByID: userID,
	}
	if err := db.DB.Create(&document).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save document",
			Error:   err.Error(),
		})
	}

	utils.Notify(milestone.Booking.ProviderID, "milestone_document",
		"New document uploaded",
		fmt.Sprintf("A document was uploaded to milestone %q.", milestone.Title))

	return c.Status(fiber.StatusCreated).JSON(document)
}
