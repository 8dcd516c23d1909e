package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceValue(t *testing.T) {
	v, err := StringSlice{"qualitative methods", "SPSS"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["qualitative methods","SPSS"]`, v.(string))

	v, err = StringSlice(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, v.(string))
}

func TestStringSliceScan(t *testing.T) {
	var s StringSlice
	require.NoError(t, s.Scan([]byte(`["stata","R"]`)))
	assert.Equal(t, StringSlice{"stata", "R"}, s)

	var fromString StringSlice
	require.NoError(t, fromString.Scan(`["econometrics"]`))
	assert.Equal(t, StringSlice{"econometrics"}, fromString)

	var fromNull StringSlice
	require.NoError(t, fromNull.Scan(nil))
	assert.Empty(t, fromNull)
}
