package pricing

import "fmt"

const minutesPerDay = 24 * 60

// DurationChoice is one selectable duration for a service category.
// Token is the value a client submits ("7" for a 7-day review), Minutes is the
// canonical representation stored on the service.
type DurationChoice struct {
	Token   string `json:"token"`
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
}

func hourChoice(hours int) DurationChoice {
	label := fmt.Sprintf("%d hours", hours)
	if hours == 1 {
		label = "1 hour"
	}
	return DurationChoice{Token: fmt.Sprintf("%d", hours), Minutes: hours * 60, Label: label}
}

func dayChoice(days int) DurationChoice {
	return DurationChoice{Token: fmt.Sprintf("%d", days), Minutes: days * minutesPerDay, Label: fmt.Sprintf("%d days", days)}
}

// AllowedChoices returns the ordered duration choices for a category.
// Unrecognized categories fall back to a single one-hour choice.
func AllowedChoices(category ServiceCategory) []DurationChoice {
	switch category {
	case GeneralConsultation:
		return []DurationChoice{hourChoice(1), hourChoice(2), hourChoice(3), hourChoice(4), hourChoice(5)}
	case FreeConsultation:
		return []DurationChoice{hourChoice(1)}
	case ChapterReview:
		return []DurationChoice{dayChoice(7), dayChoice(14), dayChoice(30)}
	case FullThesisReview:
		return []DurationChoice{dayChoice(30), dayChoice(90)}
	case FullThesisCycleSupport:
		return []DurationChoice{dayChoice(90), dayChoice(180), dayChoice(365)}
	default:
		return []DurationChoice{hourChoice(1)}
	}
}

// DefaultMinutes returns the duration a freshly created service starts with:
// the category's first allowed choice.
func DefaultMinutes(category ServiceCategory) int {
	return AllowedChoices(category)[0].Minutes
}

// ToMinutes converts a duration token to canonical minutes for the category.
func ToMinutes(category ServiceCategory, token string) (int, error) {
	for _, choice := range AllowedChoices(category) {
		if choice.Token == token {
			return choice.Minutes, nil
		}
	}
	return 0, ErrInvalidDurationChoice
}

// FromMinutes is the inverse of ToMinutes. Minute values that no longer map to
// a choice (a category change can leave one behind) fall back to the category's
// first allowed token.
func FromMinutes(category ServiceCategory, minutes int) string {
	choices := AllowedChoices(category)
	for _, choice := range choices {
		if choice.Minutes == minutes {
			return choice.Token
		}
	}
	return choices[0].Token
}
