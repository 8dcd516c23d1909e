package pricing

import "errors"

var (
	// ErrInvalidAmount is returned when a negative price or add-on amount is supplied.
	ErrInvalidAmount = errors.New("amount must be zero or positive")

	// ErrInvalidDurationChoice is returned when a duration token is not in the
	// category's allowed set.
	ErrInvalidDurationChoice = errors.New("duration choice not allowed for this category")

	// ErrNameNotAllowedForCategory is returned when an add-on name is not in the
	// category's allowed set.
	ErrNameNotAllowedForCategory = errors.New("add-on not available for this category")

	// ErrNoPricingForLevel is returned when a price is requested for an academic
	// level the service has no tier for.
	ErrNoPricingForLevel = errors.New("no pricing set for this academic level")
)
