package utils

import (
	"log"

	"github.com/scholarlink/scholarlink-api/db"
	"github.com/scholarlink/scholarlink-api/models"
)

// Notify persists an in-app notification and sends a best-effort email copy.
// Notification failure never fails the action that produced it; errors are
// only logged.
func Notify(userID uint, kind, title, body string) {
	notification := models.Notification{
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Body:   body,
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to store notification for user %d: %v", userID, err)
		return
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		log.Printf("Failed to load user %d for notification email: %v", userID, err)
		return
	}

	go func() {
		if err := SendEmail(user.Email, title, "<p>"+body+"</p>"); err != nil {
			log.Printf("Failed to send notification email to %s: %v", user.Email, err)
		}
	}()
}
