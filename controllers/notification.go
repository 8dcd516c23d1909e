package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// GetMyNotifications returns the user's notifications, newest first
func GetMyNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	query := db.DB.Where("user_id = ?", userID).Order("created_at desc")
	if c.Query("unread") == "true" {
		query = query.Where("read_at IS NULL")
	}

	var notifications []models.Notification
	if err := query.Limit(100).Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch notifications",
			Error:   err.Error(),
		})
	}
	return c.JSON(notifications)
}

// MarkNotificationRead marks one of the user's notifications as read
func MarkNotificationRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found",
		})
	}

	now := time.Now()
	notification.ReadAt = &now
	if err := db.DB.Save(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update notification",
		})
	}
	return c.JSON(notification)
}
