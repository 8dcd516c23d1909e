package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarlink/scholarlink-api/pricing"
)

func confirmedBooking(scheduledAt time.Time) *Booking {
	return &Booking{
		ServiceID:       1,
		StudentID:       2,
		ProviderID:      3,
		AcademicLevel:   pricing.Masters,
		BasePrice:       15000,
		AddOnPrice:      3000,
		TotalPrice:      18000,
		Currency:        "XAF",
		ScheduledAt:     scheduledAt,
		DurationMinutes: 60,
		Status:          StatusConfirmed,
	}
}

func TestTransitionHappyPaths(t *testing.T) {
	booking := &Booking{Status: StatusPending}
	require.NoError(t, booking.Transition(StatusConfirmed))
	require.NoError(t, booking.Transition(StatusCompleted))
	assert.Equal(t, StatusCompleted, booking.Status)

	booking = &Booking{Status: StatusPending}
	require.NoError(t, booking.Transition(StatusCancelled))

	booking = &Booking{Status: StatusConfirmed}
	require.NoError(t, booking.Transition(StatusNoShow))

	booking = &Booking{Status: StatusConfirmed}
	require.NoError(t, booking.Transition(StatusCancelled))
}

func TestTransitionRejectsInvalidMoves(t *testing.T) {
	booking := &Booking{Status: StatusPending}
	err := booking.Transition(StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, booking.Status)

	booking = &Booking{Status: StatusPending}
	err = booking.Transition(StatusNoShow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminalStatesAreClosed(t *testing.T) {
	targets := []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow}
	for _, terminal := range []BookingStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		for _, next := range targets {
			booking := &Booking{Status: terminal}
			err := booking.Transition(next)
			assert.ErrorIs(t, err, ErrInvalidTransition, "from %s to %s", terminal, next)
			assert.Equal(t, terminal, booking.Status)
		}
	}
}

func TestConfirmAlreadyCompletedBooking(t *testing.T) {
	booking := confirmedBooking(time.Now().Add(-2 * time.Hour))
	require.NoError(t, booking.Complete(time.Now()))

	err := booking.Transition(StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusCompleted, booking.Status)
}

func TestCompleteRequiresElapsedSchedule(t *testing.T) {
	now := time.Now()

	booking := confirmedBooking(now.Add(time.Hour))
	err := booking.Complete(now)
	assert.ErrorIs(t, err, ErrNotYetElapsed)
	assert.Equal(t, StatusConfirmed, booking.Status)

	booking = confirmedBooking(now.Add(-2 * time.Hour))
	require.NoError(t, booking.Complete(now))
	assert.Equal(t, StatusCompleted, booking.Status)

	// Complete is only reachable from confirmed.
	pending := &Booking{Status: StatusPending, ScheduledAt: now.Add(-2 * time.Hour), DurationMinutes: 60}
	err = pending.Complete(now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPriceSnapshotSurvivesServiceEdits(t *testing.T) {
	service := paidChapterReviewService()
	quote, err := pricing.ComputePrice(service.PriceTable(), service.AddOnCatalog(), pricing.Masters, []string{pricing.AddOnCitations})
	require.NoError(t, err)

	booking := &Booking{
		ServiceID:     service.ID,
		AcademicLevel: pricing.Masters,
		BasePrice:     quote.BasePrice,
		AddOnPrice:    quote.AddOnPrice,
		TotalPrice:    quote.Total,
		Currency:      quote.Currency,
	}

	// Provider raises every tier after the booking exists.
	for i := range service.Prices {
		service.Prices[i].Amount *= 2
	}
	for i := range service.AddOns {
		service.AddOns[i].Amount *= 2
	}

	assert.Equal(t, int64(15000), booking.BasePrice)
	assert.Equal(t, int64(3000), booking.AddOnPrice)
	assert.Equal(t, int64(18000), booking.TotalPrice)
}
