package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	slotErr := errors.New(`ERROR: duplicate key value violates unique constraint "uniq_provider_slot" (SQLSTATE 23505)`)

	assert.True(t, IsUniqueViolation(slotErr, ""))
	assert.True(t, IsUniqueViolation(slotErr, "uniq_provider_slot"))
	assert.False(t, IsUniqueViolation(slotErr, "idx_service_level"))

	assert.False(t, IsUniqueViolation(nil, ""))
	assert.False(t, IsUniqueViolation(errors.New("connection refused"), ""))
}
