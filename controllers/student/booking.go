package student

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/pricing"
	"github.com/scholarlink/scholarlink-api/utils"
)

// BookingInput is the client's booking submission
type BookingInput struct {
	ServiceID      uint                  `json:"service_id"`
	AcademicLevel  pricing.AcademicLevel `json:"academic_level"`
	SelectedAddOns []string              `json:"selected_add_ons"`
	ScheduledAt    time.Time             `json:"scheduled_at"`
	MeetingMode    string                `json:"meeting_mode"`
	StudentNotes   string                `json:"student_notes"`
}

// QuoteBooking prices a selection without creating anything. The client shows
// this breakdown before the student commits.
func QuoteBooking(c *fiber.Ctx) error {
	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.Preload("Prices").Preload("AddOns").First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	quote, err := pricing.ComputePrice(service.PriceTable(), service.AddOnCatalog(), input.AcademicLevel, input.SelectedAddOns)
	if err != nil {
		if errors.Is(err, pricing.ErrNoPricingForLevel) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "This service has no pricing for your academic level",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(quote)
}

// CreateBooking reserves a slot against a service. The computed price is
// snapshotted onto the booking; later edits to the service's tiers never
// change it.
func CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.Preload("Prices").Preload("AddOns").First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	if !service.IsActive {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "This service is not open for booking",
		})
	}

	if input.ScheduledAt.IsZero() || !input.ScheduledAt.After(time.Now()) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": models.ErrInvalidSchedule.Error(),
		})
	}

	// Price the selection before touching the store
	quote, err := pricing.ComputePrice(service.PriceTable(), service.AddOnCatalog(), input.AcademicLevel, input.SelectedAddOns)
	if err != nil {
		if errors.Is(err, pricing.ErrNoPricingForLevel) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "This service has no pricing for your academic level",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	scheduledAt := utils.ToWAT(input.ScheduledAt)
	duration := time.Duration(service.DurationMinutes) * time.Minute

	// Hour-based consultations must land inside the provider's weekly windows
	if service.Category == pricing.GeneralConsultation || service.Category == pricing.FreeConsultation {
		inWindow, err := utils.CheckWithinWeeklySlots(service.ProviderID, scheduledAt)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Error checking availability",
				Error:   err.Error(),
			})
		}
		if !inWindow {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "The consultant is not available at that time",
			})
		}
	}

	booking := models.Booking{
		ServiceID:       service.ID,
		StudentID:       userID,
		ProviderID:      service.ProviderID,
		AcademicLevel:   input.AcademicLevel,
		SelectedAddOns:  models.StringSlice(input.SelectedAddOns),
		BasePrice:       quote.BasePrice,
		AddOnPrice:      quote.AddOnPrice,
		TotalPrice:      quote.Total,
		Currency:        quote.Currency,
		ScheduledAt:     scheduledAt,
		DurationMinutes: service.DurationMinutes,
		MeetingMode:     input.MeetingMode,
		Status:          models.StatusPending,
		StudentNotes:    input.StudentNotes,
	}

	// Create booking inside a transaction. The FOR UPDATE conflict check runs
	// on the same transaction, so competing overlapping bookings block on each
	// other's locks; uniq_provider_slot additionally rejects identical slots.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		available, err := utils.CheckSlotAvailability(tx, service.ProviderID, scheduledAt, duration)
		if err != nil {
			return err
		}
		if !available {
			return models.ErrSlotAlreadyBooked
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrSlotAlreadyBooked) || utils.IsUniqueViolation(err, "uniq_provider_slot") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": models.ErrSlotAlreadyBooked.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	// Open a payment reference for paid bookings
	var paymentRef string
	if booking.TotalPrice > 0 {
		payment := models.Payment{
			BookingID: booking.ID,
			Reference: uuid.NewString(),
			Amount:    booking.TotalPrice,
			Currency:  booking.Currency,
			Status:    "initiated",
		}
		if err := db.DB.Create(&payment).Error; err != nil {
			// The booking stands; payment can be re-initiated later
			log.Println("Failed to create payment record for booking", booking.ID, ":", err)
		} else {
			paymentRef = payment.Reference
		}
	}

	// Notification failure must not roll back the booking
	utils.Notify(service.ProviderID, "booking_created",
		"New booking request",
		fmt.Sprintf("You have a new booking request for %q on %s.",
			service.Title, scheduledAt.Format("2006-01-02 15:04")))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking":           booking,
		"payment_reference": paymentRef,
	})
}

// ListMyBookings returns the student's bookings, newest first
func ListMyBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	query := db.DB.
		Preload("Service").
		Preload("Provider").
		Where("student_id = ?", userID).
		Order("scheduled_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].Provider.Password = ""
		bookings[i].Provider.OTP = ""
	}
	return c.JSON(bookings)
}

// CancelBooking cancels the student's own pending or confirmed booking
func CancelBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.Preload("Service").
		Where("id = ? AND student_id = ?", id, userID).
		First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := booking.Transition(models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("A %s booking can no longer be cancelled", booking.Status),
		})
	}
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to cancel booking",
		})
	}

	utils.Notify(booking.ProviderID, "booking_cancelled",
		"Booking cancelled",
		fmt.Sprintf("The booking for %q on %s was cancelled by the student.",
			booking.Service.Title, booking.ScheduledAt.Format("2006-01-02 15:04")))

	return c.JSON(booking)
}
