package utils

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
)

// CheckSlotAvailability checks if a provider is free for a given time slot.
// Run it on the transaction that will create the booking: the FOR UPDATE
// locks conflicting rows until that transaction commits, serializing
// competing bookings over the same period.
func CheckSlotAvailability(tx *gorm.DB, providerID uint, startTime time.Time, duration time.Duration) (bool, error) {
	endTime := startTime.Add(duration)

	var existingBooking models.Booking
	err := tx.Raw(`
		SELECT *
		FROM bookings
		WHERE provider_id = ? AND status IN ('pending', 'confirmed') AND deleted_at IS NULL AND (
			(scheduled_at < ? AND scheduled_at + (duration_minutes * interval '1 minute') > ?) OR
			(scheduled_at >= ? AND scheduled_at < ?)
		) FOR UPDATE
		LIMIT 1
	`, providerID, endTime, startTime, startTime, endTime).
		Scan(&existingBooking).Error

	// If there is any conflicting booking, return false
	if err == nil && existingBooking.ID != 0 {
		return false, nil
	}

	// No conflict, slot is available
	return true, nil
}

// CheckWithinWeeklySlots checks if a consultation start time falls inside one
// of the provider's weekly availability windows (including break handling).
// Providers who have set no windows accept any time.
func CheckWithinWeeklySlots(providerID uint, startTime time.Time) (bool, error) {
	var slots []models.WeeklySlot
	if err := db.DB.Where("provider_id = ?", providerID).Find(&slots).Error; err != nil {
		return false, fmt.Errorf("provider availability not found")
	}
	if len(slots) == 0 {
		return true, nil
	}

	// Get the day of the week for the booking (0 for Sunday ... 6 for Saturday)
	bookingDay := int(startTime.Weekday())

	var slotForTheDay *models.WeeklySlot
	for i, slot := range slots {
		if int(slot.DayOfWeek) == bookingDay && slot.IsAvailable {
			slotForTheDay = &slots[i]
			break
		}
	}
	// If no window is set for the day
	if slotForTheDay == nil {
		return false, nil
	}

	layout := "15:04"
	windowStart, err := time.Parse(layout, slotForTheDay.StartTime)
	if err != nil {
		return false, fmt.Errorf("invalid start time format")
	}
	windowEnd, err := time.Parse(layout, slotForTheDay.EndTime)
	if err != nil {
		return false, fmt.Errorf("invalid end time format")
	}

	clock, _ := time.Parse(layout, startTime.Format(layout))
	if clock.Before(windowStart) || clock.After(windowEnd) {
		return false, nil // Booking is outside the window
	}

	// Check for break periods if they exist
	if slotForTheDay.BreakStart != nil && slotForTheDay.BreakEnd != nil {
		breakStart, err := time.Parse(layout, *slotForTheDay.BreakStart)
		if err != nil {
			return false, fmt.Errorf("invalid break start time format")
		}
		breakEnd, err := time.Parse(layout, *slotForTheDay.BreakEnd)
		if err != nil {
			return false, fmt.Errorf("invalid break end time format")
		}

		if clock.After(breakStart) && clock.Before(breakEnd) {
			return false, nil // Booking falls within break time
		}
	}

	return true, nil
}
