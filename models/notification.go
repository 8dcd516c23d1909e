package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is an in-app notice. Email delivery of the same notice is
// best-effort and never blocks the action that produced it.
type Notification struct {
	gorm.Model
	UserID uint       `json:"user_id"`
	User   User       `json:"user" gorm:"foreignKey:UserID"`
	Kind   string     `json:"kind"` // "booking_created", "booking_confirmed", "payment", "message", ...
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	ReadAt *time.Time `json:"read_at"`
}
