package models

import (
	"gorm.io/gorm"
)

// Payment records the external payment collaborator's result for a booking.
// The collaborator owns the protocol; the only contract here is the reference
// it echoes back and the status it reports.
type Payment struct {
	gorm.Model
	BookingID uint    `json:"booking_id"`
	Booking   Booking `json:"booking" gorm:"foreignKey:BookingID"`
	Reference string  `json:"reference" gorm:"uniqueIndex"`
	Amount    int64   `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"` // "initiated", "succeeded", "failed", "refunded"
	Channel   string  `json:"channel"`
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalPaid     WithdrawalStatus = "paid"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// Withdrawal is a provider's payout request against their earned balance.
type Withdrawal struct {
	gorm.Model
	ProviderID uint             `json:"provider_id"`
	Provider   User             `json:"provider" gorm:"foreignKey:ProviderID"`
	Reference  string           `json:"reference" gorm:"uniqueIndex"`
	Amount     int64            `json:"amount"`
	Currency   string           `json:"currency"`
	Method     string           `json:"method"` // "mobile_money", "bank_transfer"
	Account    string           `json:"account"`
	Status     WithdrawalStatus `json:"status"`
	Remarks    string           `json:"remarks"`
}

func (w *Withdrawal) BeforeCreate(tx *gorm.DB) error {
	if w.Status == "" {
		w.Status = WithdrawalPending
	}
	return nil
}
