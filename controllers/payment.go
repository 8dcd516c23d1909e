package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// PaymentCallback receives the external payment processor's result for a
// booking payment. The processor echoes back the reference we issued at
// booking time; only the status it reports is trusted here.
func PaymentCallback(c *fiber.Ctx) error {
	type CallbackInput struct {
		Reference string `json:"reference"`
		Status    string `json:"status"` // "succeeded", "failed", "refunded"
		Channel   string `json:"channel"`
	}

	input := new(CallbackInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var payment models.Payment
	if err := db.DB.Preload("Booking").Where("reference = ?", input.Reference).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Payment reference not found",
		})
	}

	switch input.Status {
	case "succeeded", "failed", "refunded":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown payment status",
		})
	}

	payment.Status = input.Status
	payment.Channel = input.Channel
	if err := db.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record payment result",
		})
	}

	// Mirror the result onto the booking's payment status
	bookingStatus := models.PaymentUnpaid
	switch input.Status {
	case "succeeded":
		bookingStatus = models.PaymentPaid
	case "refunded":
		bookingStatus = models.PaymentRefunded
	}
	if err := db.DB.Model(&models.Booking{}).Where("id = ?", payment.BookingID).
		Update("payment_status", bookingStatus).Error; err != nil {
		log.Printf("Failed to update booking %d payment status: %v", payment.BookingID, err)
	}

	if input.Status == "succeeded" {
		utils.Notify(payment.Booking.ProviderID, "payment",
			"Payment received",
			fmt.Sprintf("Payment of %d %s received for booking #%d.", payment.Amount, payment.Currency, payment.BookingID))
	}

	return c.JSON(fiber.Map{"message": "Payment result recorded"})
}
