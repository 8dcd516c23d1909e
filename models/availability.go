package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeeklySlot is one weekday window in which a provider accepts consultations.
// Review-style services (chapter and thesis reviews) are not slot-bound; the
// windows gate only the hour-based consultation categories.
type WeeklySlot struct {
	gorm.Model
	ProviderID  uint      `json:"provider_id"`
	Provider    User      `json:"provider" gorm:"foreignKey:ProviderID"`
	DayOfWeek   DayOfWeek `json:"day_of_week"`
	StartTime   string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime     string    `json:"end_time"`   // Format "HH:MM" in 24h
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	BreakStart  *string   `json:"break_start"` // Optional break start time
	BreakEnd    *string   `json:"break_end"`   // Optional break end time
}
