package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating      float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment     string  `json:"comment"`
	ProviderID  uint    `json:"provider_id"`
	Provider    User    `json:"provider" gorm:"foreignKey:ProviderID"`
	StudentID   uint    `json:"student_id"`
	Student     User    `json:"student" gorm:"foreignKey:StudentID"`
	ServiceID   uint    `json:"service_id"`
	Service     Service `json:"service" gorm:"foreignKey:ServiceID"`
	IsAnonymous bool    `json:"is_anonymous" gorm:"default:false"`
	IsVerified  bool    `json:"is_verified" gorm:"default:false"` // review backed by a completed booking
	BookingID   *uint   `json:"booking_id"`
}

// BeforeCreate hook to validate rating
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	// Ensure rating is between 1.0 and 5.0
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}

	return nil
}

// Check if student has already reviewed this provider's service
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("student_id = ? AND provider_id = ? AND service_id = ? AND deleted_at IS NULL",
			r.StudentID, r.ProviderID, r.ServiceID).
		Count(&count).Error

	return count > 0, err
}
