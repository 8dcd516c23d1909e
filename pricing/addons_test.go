package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedNamesPerCategory(t *testing.T) {
	assert.Contains(t, AllowedNames(ChapterReview), "Express Review (24–72 hours)")
	assert.Contains(t, AllowedNames(FullThesisReview), "Express Review (72 hours)")
	assert.Contains(t, AllowedNames(FullThesisCycleSupport), "Express Review")

	// Consultations never carry add-ons.
	assert.Empty(t, AllowedNames(GeneralConsultation))
	assert.Empty(t, AllowedNames(FreeConsultation))
}

func TestAddAddOnValidation(t *testing.T) {
	var catalog AddOnCatalog

	_, err := AddAddOn(catalog, GeneralConsultation, AddOnCitations, "", 3000, "XAF")
	assert.ErrorIs(t, err, ErrNameNotAllowedForCategory)

	_, err = AddAddOn(catalog, ChapterReview, "Ghost Writing", "", 3000, "XAF")
	assert.ErrorIs(t, err, ErrNameNotAllowedForCategory)

	_, err = AddAddOn(catalog, ChapterReview, AddOnCitations, "", -5, "XAF")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAddAddOnUpsertsByName(t *testing.T) {
	catalog, err := AddAddOn(nil, ChapterReview, AddOnCitations, "Check references", 3000, "XAF")
	require.NoError(t, err)

	catalog, err = AddAddOn(catalog, ChapterReview, AddOnCitations, "Full reference audit", 4000, "XAF")
	require.NoError(t, err)

	require.Len(t, catalog, 1)
	addOn, ok := AddOnFor(catalog, AddOnCitations)
	require.True(t, ok)
	assert.Equal(t, int64(4000), addOn.Amount)
	assert.Equal(t, "Full reference audit", addOn.Description)
	assert.True(t, addOn.Active)
}

func TestRemoveAddOn(t *testing.T) {
	catalog, err := AddAddOn(nil, ChapterReview, AddOnFormatting, "", 2000, "XAF")
	require.NoError(t, err)

	catalog = RemoveAddOn(catalog, AddOnFormatting)
	assert.Empty(t, catalog)

	// Absent name is a no-op.
	catalog = RemoveAddOn(catalog, AddOnFormatting)
	assert.Empty(t, catalog)
}
