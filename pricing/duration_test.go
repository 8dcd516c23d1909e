package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedChoicesPerCategory(t *testing.T) {
	tests := []struct {
		category ServiceCategory
		tokens   []string
		minutes  []int
	}{
		{GeneralConsultation, []string{"1", "2", "3", "4", "5"}, []int{60, 120, 180, 240, 300}},
		{FreeConsultation, []string{"1"}, []int{60}},
		{ChapterReview, []string{"7", "14", "30"}, []int{10080, 20160, 43200}},
		{FullThesisReview, []string{"30", "90"}, []int{43200, 129600}},
		{FullThesisCycleSupport, []string{"90", "180", "365"}, []int{129600, 259200, 525600}},
	}

	for _, tt := range tests {
		choices := AllowedChoices(tt.category)
		require.Len(t, choices, len(tt.tokens), "category %s", tt.category)
		for i, choice := range choices {
			assert.Equal(t, tt.tokens[i], choice.Token)
			assert.Equal(t, tt.minutes[i], choice.Minutes)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	categories := []ServiceCategory{
		GeneralConsultation, FreeConsultation, ChapterReview, FullThesisReview, FullThesisCycleSupport,
	}
	for _, category := range categories {
		for _, choice := range AllowedChoices(category) {
			minutes, err := ToMinutes(category, choice.Token)
			require.NoError(t, err)
			assert.Equal(t, choice.Token, FromMinutes(category, minutes))
		}
	}
}

func TestToMinutesRejectsForeignToken(t *testing.T) {
	_, err := ToMinutes(ChapterReview, "2")
	assert.ErrorIs(t, err, ErrInvalidDurationChoice)

	_, err = ToMinutes(FreeConsultation, "3")
	assert.ErrorIs(t, err, ErrInvalidDurationChoice)
}

func TestUnknownCategoryFallsBackToOneHour(t *testing.T) {
	choices := AllowedChoices(ServiceCategory("workshop"))
	require.Len(t, choices, 1)
	assert.Equal(t, 60, choices[0].Minutes)
	assert.Equal(t, 60, DefaultMinutes(ServiceCategory("workshop")))
}

func TestFromMinutesUnmappedFallsBackToFirstToken(t *testing.T) {
	// A leftover 60-minute duration after a switch to chapter review maps to
	// the first review choice.
	assert.Equal(t, "7", FromMinutes(ChapterReview, 60))
}
