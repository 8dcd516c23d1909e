package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
)

// GetDashboardOverview returns the provider's headline numbers
func GetDashboardOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		NoShowCount    int64     `json:"no_show_count"`
		TotalServices  int64     `json:"total_services"`
		ActiveServices int64     `json:"active_services"`
		TotalRevenue   int64     `json:"total_revenue"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.Booking{}).Where("provider_id = ?", userID).Count(&statistics.TotalBookings)

	db.DB.Model(&models.Booking{}).Where("provider_id = ? AND status = ?", userID, models.StatusPending).Count(&statistics.PendingCount)
	db.DB.Model(&models.Booking{}).Where("provider_id = ? AND status = ?", userID, models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	db.DB.Model(&models.Booking{}).Where("provider_id = ? AND status = ?", userID, models.StatusCompleted).Count(&statistics.CompletedCount)
	db.DB.Model(&models.Booking{}).Where("provider_id = ? AND status = ?", userID, models.StatusCancelled).Count(&statistics.CancelledCount)
	db.DB.Model(&models.Booking{}).Where("provider_id = ? AND status = ?", userID, models.StatusNoShow).Count(&statistics.NoShowCount)

	db.DB.Model(&models.Service{}).Where("provider_id = ?", userID).Count(&statistics.TotalServices)
	db.DB.Model(&models.Service{}).Where("provider_id = ? AND is_active = ?", userID, true).Count(&statistics.ActiveServices)

	// Revenue comes from the snapshotted booking totals, not current tiers
	type RevenueResult struct {
		TotalRevenue int64
	}
	var revenueResult RevenueResult
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ? AND payment_status = ?",
			userID, models.StatusCompleted, models.PaymentPaid).
		Select("COALESCE(SUM(total_price), 0) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetRecentBookings returns the provider's most recent bookings
func GetRecentBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	limit := 5
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var bookings []models.Booking
	if err := db.DB.
		Preload("Service").
		Preload("Student").
		Where("provider_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(bookings)
}
