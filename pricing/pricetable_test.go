package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPriceUpserts(t *testing.T) {
	var table PriceTable
	var err error

	table, err = SetPrice(table, Undergraduate, 10000, "XAF")
	require.NoError(t, err)
	table, err = SetPrice(table, Masters, 15000, "XAF")
	require.NoError(t, err)

	// Re-setting a level replaces the tier instead of adding a duplicate.
	table, err = SetPrice(table, Undergraduate, 12000, "XAF")
	require.NoError(t, err)

	require.Len(t, table, 2)
	amount, err := PriceFor(table, Undergraduate)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), amount)
}

func TestSetPriceRejectsNegativeAmount(t *testing.T) {
	table := PriceTable{{Level: Masters, Amount: 15000, Currency: "XAF"}}
	_, err := SetPrice(table, Masters, -1, "XAF")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// Table is untouched on failure.
	amount, err := PriceFor(table, Masters)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), amount)
}

func TestRemovePrice(t *testing.T) {
	table := PriceTable{
		{Level: Undergraduate, Amount: 10000, Currency: "XAF"},
		{Level: Masters, Amount: 15000, Currency: "XAF"},
	}

	table = RemovePrice(table, Undergraduate)
	require.Len(t, table, 1)
	_, err := PriceFor(table, Undergraduate)
	assert.ErrorIs(t, err, ErrNoPricingForLevel)

	// Removing an absent level is a no-op, not an error.
	table = RemovePrice(table, PhD)
	assert.Len(t, table, 1)
}

func TestPriceForMissingLevel(t *testing.T) {
	_, err := PriceFor(PriceTable{}, Postdoc)
	assert.ErrorIs(t, err, ErrNoPricingForLevel)
}

func TestZeroTableCoversEveryLevel(t *testing.T) {
	table := ZeroTable("XAF")
	require.Len(t, table, len(AllLevels))
	for _, level := range AllLevels {
		amount, err := PriceFor(table, level)
		require.NoError(t, err)
		assert.Zero(t, amount)
	}
}
