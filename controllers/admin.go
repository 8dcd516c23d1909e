package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// VerifyProvider marks a provider profile as verified after document review
func VerifyProvider(c *fiber.Ctx) error {
	providerID := c.Params("id")

	var profile models.ProviderProfile
	if err := db.DB.Where("provider_id = ?", providerID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Provider profile not found",
		})
	}

	profile.IsVerified = true
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to verify provider",
		})
	}

	utils.Notify(profile.ProviderID, "moderation",
		"Profile verified",
		"Your consultant profile has been verified. Verified profiles rank higher in search.")

	return c.JSON(profile)
}

// SuspendUser blocks a user account from the platform
func SuspendUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	type SuspendInput struct {
		Suspend bool `json:"suspend"`
	}
	input := new(SuspendInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	user.IsSuspended = input.Suspend
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	user.Password = ""
	user.OTP = ""
	return c.JSON(user)
}

// ForceDeactivateService takes a service off the catalog for policy reasons
func ForceDeactivateService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	service.Deactivate()
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to deactivate service",
		})
	}
	InvalidateCatalogCache()

	utils.Notify(service.ProviderID, "moderation",
		"Service unlisted",
		fmt.Sprintf("Your service %q was removed from the catalog by a moderator.", service.Title))

	return c.JSON(service)
}

// GetAllBookings returns every booking for admin oversight
func GetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := db.DB.Preload("Service").Preload("Provider").Preload("Student").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetBooking returns one booking by ID
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Provider").Preload("Student").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// ListWithdrawals returns withdrawal requests, optionally filtered by status
func ListWithdrawals(c *fiber.Ctx) error {
	query := db.DB.Preload("Provider").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var withdrawals []models.Withdrawal
	if err := query.Find(&withdrawals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch withdrawals",
		})
	}
	return c.JSON(withdrawals)
}

// ResolveWithdrawal marks a pending withdrawal as paid or rejected
func ResolveWithdrawal(c *fiber.Ctx) error {
	id := c.Params("id")

	var withdrawal models.Withdrawal
	if err := db.DB.First(&withdrawal, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Withdrawal not found",
		})
	}

	if withdrawal.Status != models.WithdrawalPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Withdrawal has already been resolved",
		})
	}

	type ResolveInput struct {
		Status  models.WithdrawalStatus `json:"status"` // "paid" or "rejected"
		Remarks string                  `json:"remarks"`
	}
	input := new(ResolveInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Status != models.WithdrawalPaid && input.Status != models.WithdrawalRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status must be 'paid' or 'rejected'",
		})
	}

	withdrawal.Status = input.Status
	withdrawal.Remarks = input.Remarks
	if err := db.DB.Save(&withdrawal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve withdrawal",
		})
	}

	utils.Notify(withdrawal.ProviderID, "payment",
		"Withdrawal "+string(input.Status),
		fmt.Sprintf("Your withdrawal request of %d %s is now %s.", withdrawal.Amount, withdrawal.Currency, input.Status))

	return c.JSON(withdrawal)
}
