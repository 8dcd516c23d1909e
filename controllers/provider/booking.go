package provider

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// GetUpcomingBookings returns upcoming bookings for the logged-in provider
func GetUpcomingBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	// Get optional query parameters
	limit := 10 // Default limit
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	now := time.Now()
	startDate := now
	endDate := now.AddDate(0, 0, 30)

	// Override date range if filter is provided
	dateFilter := c.Query("filter", "month")
	switch dateFilter {
	case "today":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1)
		startDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 23, 59, 59, 0, now.Location())
	case "week":
		endDate = now.AddDate(0, 0, 7)
	case "month":
		endDate = now.AddDate(0, 1, 0)
	}

	var bookings []models.Booking
	query := db.DB.
		Preload("Service").
		Preload("Student").
		Where("provider_id = ?", userID).
		Where("scheduled_at >= ?", startDate).
		Where("scheduled_at <= ?", endDate).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Order("scheduled_at asc").
		Limit(limit)

	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings":   bookings,
		"count":      len(bookings),
		"filter":     dateFilter,
		"start_date": startDate.Format("2006-01-02"),
		"end_date":   endDate.Format("2006-01-02"),
	})
}

// GetBookingHistory returns past bookings for the logged-in provider
func GetBookingHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	// Get pagination parameters
	page := 1
	limit := 10
	if c.Query("page") != "" {
		if parsedPage := c.QueryInt("page"); parsedPage > 0 {
			page = parsedPage
		}
	}
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	offset := (page - 1) * limit

	// Parse optional status filter
	var statuses []models.BookingStatus
	switch models.BookingStatus(c.Query("status")) {
	case models.StatusCompleted:
		statuses = []models.BookingStatus{models.StatusCompleted}
	case models.StatusCancelled:
		statuses = []models.BookingStatus{models.StatusCancelled}
	case models.StatusNoShow:
		statuses = []models.BookingStatus{models.StatusNoShow}
	default:
		statuses = []models.BookingStatus{models.StatusCompleted, models.StatusCancelled, models.StatusNoShow}
	}

	var bookings []models.Booking
	var total int64

	countQuery := db.DB.Model(&models.Booking{}).
		Where("provider_id = ?", userID).
		Where("status IN ?", statuses)
	countQuery.Count(&total)

	if err := db.DB.
		Preload("Service").
		Preload("Student").
		Where("provider_id = ?", userID).
		Where("status IN ?", statuses).
		Order("scheduled_at desc").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// loadOwnBooking fetches a booking and checks the provider owns it
func loadOwnBooking(c *fiber.Ctx) (*models.Booking, error) {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Student").
		Where("id = ? AND provider_id = ?", id, userID).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// transitionResponse maps a state machine failure to a response
func transitionError(c *fiber.Ctx, booking *models.Booking, err error) error {
	if errors.Is(err, models.ErrInvalidTransition) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("A %s booking cannot change to that status", booking.Status),
		})
	}
	if errors.Is(err, models.ErrNotYetElapsed) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": models.ErrNotYetElapsed.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// ConfirmBooking moves a pending booking to confirmed
func ConfirmBooking(c *fiber.Ctx) error {
	booking, err := loadOwnBooking(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := booking.Transition(models.StatusConfirmed); err != nil {
		return transitionError(c, booking, err)
	}
	if err := db.DB.Save(booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to confirm booking",
		})
	}

	utils.Notify(booking.StudentID, "booking_confirmed",
		"Booking confirmed",
		fmt.Sprintf("Your booking for %q on %s has been confirmed.",
			booking.Service.Title, booking.ScheduledAt.Format("2006-01-02 15:04")))

	return c.JSON(booking)
}

// CancelBooking cancels a pending or confirmed booking
func CancelBooking(c *fiber.Ctx) error {
	booking, err := loadOwnBooking(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := booking.Transition(models.StatusCancelled); err != nil {
		return transitionError(c, booking, err)
	}
	if err := db.DB.Save(booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to cancel booking",
		})
	}

	utils.Notify(booking.StudentID, "booking_cancelled",
		"Booking cancelled",
		fmt.Sprintf("Your booking for %q on %s was cancelled by the consultant.",
			booking.Service.Title, booking.ScheduledAt.Format("2006-01-02 15:04")))

	return c.JSON(booking)
}

// CompleteBooking closes a confirmed booking once its time has passed
func CompleteBooking(c *fiber.Ctx) error {
	booking, err := loadOwnBooking(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := booking.Complete(time.Now()); err != nil {
		return transitionError(c, booking, err)
	}
	if err := db.DB.Save(booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to complete booking",
		})
	}

	return c.JSON(booking)
}

// MarkNoShow records that the student did not attend a confirmed booking
func MarkNoShow(c *fiber.Ctx) error {
	booking, err := loadOwnBooking(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := booking.Transition(models.StatusNoShow); err != nil {
		return transitionError(c, booking, err)
	}
	if err := db.DB.Save(booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update booking",
		})
	}

	return c.JSON(booking)
}
