package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// GetProviderAvailability returns a provider's weekly availability windows
func GetProviderAvailability(c *fiber.Ctx) error {
	providerID := c.Params("providerId")
	var slots []models.WeeklySlot
	if err := db.DB.Where("provider_id = ?", providerID).Order("day_of_week asc").Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

// CreateWeeklySlot adds an availability window for the logged-in provider
func CreateWeeklySlot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	slot := new(models.WeeklySlot)
	if err := c.BodyParser(slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	slot.ProviderID = userID

	if err := db.DB.Create(slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create availability window",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// UpdateWeeklySlot updates one of the provider's own windows
func UpdateWeeklySlot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var slot models.WeeklySlot
	if err := db.DB.Where("id = ? AND provider_id = ?", id, userID).First(&slot).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability window not found",
		})
	}

	updates := new(models.WeeklySlot)
	if err := c.BodyParser(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	slot.DayOfWeek = updates.DayOfWeek
	slot.StartTime = updates.StartTime
	slot.EndTime = updates.EndTime
	slot.IsAvailable = updates.IsAvailable
	slot.BreakStart = updates.BreakStart
	slot.BreakEnd = updates.BreakEnd

	if err := db.DB.Save(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update availability window",
		})
	}
	return c.JSON(slot)
}

// DeleteWeeklySlot removes one of the provider's own windows
func DeleteWeeklySlot(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	result := db.DB.Where("id = ? AND provider_id = ?", id, userID).Delete(&models.WeeklySlot{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete availability window",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability window not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
