package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
	"github.com/scholarlink/scholarlink-api/utils"
)

// StartCronJobs initializes and starts the background scheduler
func StartCronJobs() {
	c := cron.New()

	// Run every minute to catch bookings starting in the next hour
	if _, err := c.AddFunc("* * * * *", sendBookingReminders); err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}
	// Sweep confirmed bookings whose period has elapsed
	if _, err := c.AddFunc("*/10 * * * *", completeElapsedBookings); err != nil {
		log.Fatalf("Failed to add completion cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// sendBookingReminders emails students about sessions starting in ~1 hour
func sendBookingReminders() {
	var bookings []models.Booking
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Student").Preload("Service").Preload("Provider").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Student.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Session - %s", booking.Service.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming session scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Consultant:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The ScholarLink Team</p>
	`, booking.Student.Name, booking.Service.Title, booking.Provider.Name,
		booking.ScheduledAt.Format("2006-01-02 15:04"),
		booking.EndTime().Format("2006-01-02 15:04"))

	return utils.SendEmail(booking.Student.Email, subject, body)
}

// completeElapsedBookings closes out confirmed bookings whose scheduled
// period is over. Providers can still mark no-shows before the sweep runs.
func completeElapsedBookings() {
	var bookings []models.Booking
	cutoff := time.Now()

	err := db.DB.
		Where("status = ? AND scheduled_at + (duration_minutes || ' minutes')::interval <= ?",
			models.StatusConfirmed, cutoff).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching elapsed bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := booking.Complete(cutoff); err != nil {
			continue
		}
		if err := db.DB.Save(&booking).Error; err != nil {
			log.Printf("Failed to complete booking %d: %v", booking.ID, err)
			continue
		}
		utils.Notify(booking.StudentID, "booking_completed",
			"Session completed",
			"Your session has been marked completed. You can now leave a review.")
		log.Printf("Auto-completed booking %d", booking.ID)
	}
}
