package models

import (
	"time"

	"gorm.io/gorm"
)

type MilestoneStatus string

const (
	MilestoneNotStarted MilestoneStatus = "not_started"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneDone       MilestoneStatus = "done"
)

// ThesisMilestone tracks one stage of a full thesis cycle support engagement
// (proposal, data collection, chapter drafts and so on).
type ThesisMilestone struct {
	gorm.Model
	BookingID   uint                `json:"booking_id"`
	Booking     Booking             `json:"booking" gorm:"foreignKey:BookingID"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      MilestoneStatus     `json:"status"`
	DueDate     *time.Time          `json:"due_date"`
	Documents   []MilestoneDocument `json:"documents,omitempty" gorm:"foreignKey:MilestoneID"`
}

func (m *ThesisMilestone) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = MilestoneNotStarted
	}
	return nil
}

// MilestoneDocument is a file attached to a milestone, stored in Cloudinary.
type MilestoneDocument struct {
	gorm.Model
	MilestoneID  uint   `json:"milestone_id"`
	FileName     string `json:"file_name"`
	FileURL      string `json:"file_url"`
	UploadedByID uint   `json:"uploaded_by_id"`
	UploadedBy   User   `json:"uploaded_by" gorm:"foreignKey:UploadedByID"`
}
