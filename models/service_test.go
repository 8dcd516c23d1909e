package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarlink/scholarlink-api/pricing"
)

func paidChapterReviewService() *Service {
	return &Service{
		ProviderID:      1,
		Category:        pricing.ChapterReview,
		Title:           "Methodology chapter review",
		Currency:        "XAF",
		DurationMinutes: pricing.DefaultMinutes(pricing.ChapterReview),
		Prices: []ServicePrice{
			{AcademicLevel: pricing.Undergraduate, Amount: 10000, Currency: "XAF"},
			{AcademicLevel: pricing.Masters, Amount: 15000, Currency: "XAF"},
		},
		AddOns: []ServiceAddOn{
			{Name: pricing.AddOnCitations, Amount: 3000, Currency: "XAF", Active: true},
		},
	}
}

func TestFreeConsultationDefaults(t *testing.T) {
	service := paidChapterReviewService()
	service.Category = pricing.FreeConsultation
	service.ApplyFreeConsultationDefaults()

	table := service.PriceTable()
	for _, level := range pricing.AllLevels {
		amount, err := pricing.PriceFor(table, level)
		require.NoError(t, err)
		assert.Zero(t, amount, "level %s should be free", level)
	}
	assert.Empty(t, service.AddOns)
	assert.Equal(t, 60, service.DurationMinutes)
}

func TestPublishRequiresPriceTable(t *testing.T) {
	service := &Service{
		Category: pricing.GeneralConsultation,
		Title:    "Research design consultation",
		Currency: "XAF",
	}

	err := service.Publish()
	assert.ErrorIs(t, err, ErrEmptyPriceTable)
	assert.False(t, service.IsActive)

	service.Prices = []ServicePrice{{AcademicLevel: pricing.Masters, Amount: 5000, Currency: "XAF"}}
	require.NoError(t, service.Publish())
	assert.True(t, service.IsActive)
}

func TestSetDurationTokenValidatesAgainstCategory(t *testing.T) {
	service := paidChapterReviewService()

	require.NoError(t, service.SetDurationToken("14"))
	assert.Equal(t, 20160, service.DurationMinutes)
	assert.Equal(t, "14", service.DurationToken())

	err := service.SetDurationToken("2")
	assert.ErrorIs(t, err, pricing.ErrInvalidDurationChoice)
	assert.Equal(t, 20160, service.DurationMinutes)
}

func TestDeactivateKeepsService(t *testing.T) {
	service := paidChapterReviewService()
	require.NoError(t, service.Publish())

	service.Deactivate()
	assert.False(t, service.IsActive)
	assert.NotEmpty(t, service.Prices)
}

func TestPriceTableProjection(t *testing.T) {
	service := paidChapterReviewService()
	table := service.PriceTable()

	amount, err := pricing.PriceFor(table, pricing.Masters)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), amount)

	catalog := service.AddOnCatalog()
	addOn, ok := pricing.AddOnFor(catalog, pricing.AddOnCitations)
	require.True(t, ok)
	assert.True(t, addOn.Active)
}
