package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chapterReviewFixture(t *testing.T) (PriceTable, AddOnCatalog) {
	t.Helper()

	var table PriceTable
	var err error
	table, err = SetPrice(table, Undergraduate, 10000, "XAF")
	require.NoError(t, err)
	table, err = SetPrice(table, Masters, 15000, "XAF")
	require.NoError(t, err)

	catalog, err := AddAddOn(nil, ChapterReview, AddOnCitations, "Check references", 3000, "XAF")
	require.NoError(t, err)

	return table, catalog
}

func TestComputePriceMastersWithCitationCheck(t *testing.T) {
	table, catalog := chapterReviewFixture(t)

	quote, err := ComputePrice(table, catalog, Masters, []string{AddOnCitations})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), quote.BasePrice)
	assert.Equal(t, int64(3000), quote.AddOnPrice)
	assert.Equal(t, int64(18000), quote.Total)
	assert.Equal(t, "XAF", quote.Currency)
}

func TestComputePriceTotalIsSum(t *testing.T) {
	table, catalog := chapterReviewFixture(t)
	catalog, err := AddAddOn(catalog, ChapterReview, AddOnFormatting, "", 2000, "XAF")
	require.NoError(t, err)

	quote, err := ComputePrice(table, catalog, Undergraduate, []string{AddOnCitations, AddOnFormatting})
	require.NoError(t, err)
	assert.Equal(t, quote.BasePrice+quote.AddOnPrice, quote.Total)
	assert.Equal(t, int64(5000), quote.AddOnPrice)
}

func TestComputePriceIgnoresUnknownAndInactiveAddOns(t *testing.T) {
	table, catalog := chapterReviewFixture(t)

	// Stale selection from an older version of the service.
	quote, err := ComputePrice(table, catalog, Masters, []string{"Express Review (24–72 hours)", AddOnCitations})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), quote.AddOnPrice)

	// Deactivated add-ons contribute nothing either.
	catalog[0].Active = false
	quote, err = ComputePrice(table, catalog, Masters, []string{AddOnCitations})
	require.NoError(t, err)
	assert.Zero(t, quote.AddOnPrice)
	assert.Equal(t, quote.BasePrice, quote.Total)
}

func TestComputePriceDuplicateSelectionCountsOnce(t *testing.T) {
	table, catalog := chapterReviewFixture(t)

	// The selection is a set; repeating a name must not double the charge.
	quote, err := ComputePrice(table, catalog, Masters, []string{AddOnCitations, AddOnCitations, AddOnCitations})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), quote.AddOnPrice)
	assert.Equal(t, int64(18000), quote.Total)
}

func TestComputePriceMissingLevel(t *testing.T) {
	table, catalog := chapterReviewFixture(t)

	_, err := ComputePrice(table, catalog, Postdoc, nil)
	assert.ErrorIs(t, err, ErrNoPricingForLevel)
}

func TestComputePriceNoAddOnsSelected(t *testing.T) {
	table, catalog := chapterReviewFixture(t)

	quote, err := ComputePrice(table, catalog, Undergraduate, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), quote.Total)
	assert.Zero(t, quote.AddOnPrice)
}
