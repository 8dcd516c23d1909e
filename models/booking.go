package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/scholarlink/scholarlink-api/pricing"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a student's reservation against a service at a specific date and
// time. Price fields are snapshotted from the service at creation time; later
// edits to the service's tiers never change an existing booking.
type Booking struct {
	gorm.Model
	ServiceID       uint                  `json:"service_id"`
	Service         Service               `json:"service" gorm:"foreignKey:ServiceID"`
	StudentID       uint                  `json:"student_id"`
	Student         User                  `json:"student" gorm:"foreignKey:StudentID"`
	ProviderID      uint                  `json:"provider_id"`
	Provider        User                  `json:"provider" gorm:"foreignKey:ProviderID"`
	AcademicLevel   pricing.AcademicLevel `json:"academic_level"`
	SelectedAddOns  StringSlice           `json:"selected_add_ons" gorm:"type:jsonb"`
	BasePrice       int64                 `json:"base_price"`
	AddOnPrice      int64                 `json:"add_on_price"`
	TotalPrice      int64                 `json:"total_price"`
	Currency        string                `json:"currency"`
	ScheduledAt     time.Time             `json:"scheduled_at"`
	DurationMinutes int                   `json:"duration_minutes"`
	MeetingMode     string                `json:"meeting_mode"` // "video", "in_person", "chat"
	Status          BookingStatus         `json:"status"`
	PaymentStatus   PaymentStatus         `json:"payment_status"`
	StudentNotes    string                `json:"student_notes"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentUnpaid
	}
	return nil
}

// EndTime is when the booked period is over.
func (b *Booking) EndTime() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsTerminal reports whether no further status changes are permitted.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Transition applies a status change if the state machine permits it:
// pending -> confirmed or cancelled; confirmed -> completed, cancelled or
// no_show. Terminal states accept nothing.
func (b *Booking) Transition(next BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if next != StatusConfirmed && next != StatusCancelled {
			return ErrInvalidTransition
		}
	case StatusConfirmed:
		if next != StatusCompleted && next != StatusCancelled && next != StatusNoShow {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidTransition
	}
	b.Status = next
	return nil
}

// Complete moves a confirmed booking to completed once its scheduled period
// has elapsed.
func (b *Booking) Complete(now time.Time) error {
	if b.Status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if now.Before(b.EndTime()) {
		return ErrNotYetElapsed
	}
	return b.Transition(StatusCompleted)
}
