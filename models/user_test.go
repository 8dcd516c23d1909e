package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The verification secret never serializes, even on a user loaded straight
// from the store: an expiry timestamp alone tells a caller a code is live.
func TestUserJSONOmitsVerificationFields(t *testing.T) {
	expiry := time.Now().Add(10 * time.Minute)
	user := User{
		ID:           1,
		Name:         "Ama",
		Email:        "ama@example.com",
		Password:     "hashed",
		OTP:          "482913",
		OTPExpiresAt: &expiry,
	}

	payload, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "otp")
	assert.NotContains(t, string(payload), "482913")
	assert.NotContains(t, string(payload), expiry.Format("2006"))
}
