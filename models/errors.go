package models

import "errors"

var (
	// ErrEmptyPriceTable is returned when publishing a service with no pricing tiers.
	ErrEmptyPriceTable = errors.New("service needs at least one price tier before publishing")

	// ErrHasActiveBookings is returned when deleting a service that pending or
	// confirmed bookings still reference.
	ErrHasActiveBookings = errors.New("service still has pending or confirmed bookings")

	// ErrInvalidSchedule is returned when a booking is requested for a past date or time.
	ErrInvalidSchedule = errors.New("scheduled date and time must be in the future")

	// ErrInvalidTransition is returned when a booking status change is not
	// permitted from the current state.
	ErrInvalidTransition = errors.New("booking status change not allowed from current state")

	// ErrSlotAlreadyBooked is returned when another booking already holds the
	// provider's slot. Backed by the uniq_provider_slot index.
	ErrSlotAlreadyBooked = errors.New("this time slot has already been booked")

	// ErrServiceInactive is returned when booking a service that is not published.
	ErrServiceInactive = errors.New("service is not open for booking")

	// ErrNotYetElapsed is returned when completing a booking before its
	// scheduled period has passed.
	ErrNotYetElapsed = errors.New("booking cannot be completed before its scheduled time has passed")
)
