package models

import (
	"time"
)

type User struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name"`
	Email            string         `json:"email" gorm:"unique"`
	Password         string         `json:"password,omitempty"`
	IsVerified       bool           `json:"is_verified"`
	IsSuspended      bool           `json:"is_suspended"`
	OTP              string         `json:"-"`
	OTPExpiresAt     *time.Time     `json:"-"`
	RoleID           uint           `json:"role_id"`
	Role             Role           `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	OfferedServices  []Service      `json:"offered_services,omitempty" gorm:"foreignKey:ProviderID"`
	ProviderBookings []Booking      `json:"provider_bookings,omitempty" gorm:"foreignKey:ProviderID"`
	StudentBookings  []Booking      `json:"student_bookings,omitempty" gorm:"foreignKey:StudentID"`
	Availability     []WeeklySlot   `json:"availability,omitempty" gorm:"foreignKey:ProviderID"`
	Notifications    []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
