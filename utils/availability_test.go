package utils

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

// The conflict check must issue its locking query on the handle it is given,
// so a booking transaction holds the row locks until it commits.
func TestCheckSlotAvailabilityQueriesGivenHandle(t *testing.T) {
	gdb, mock := mockGorm(t)

	mock.ExpectQuery(`SELECT[\s\S]*FROM bookings[\s\S]*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	available, err := CheckSlotAvailability(gdb, 3, time.Now().Add(time.Hour), time.Hour)
	require.NoError(t, err)
	assert.True(t, available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSlotAvailabilityConflict(t *testing.T) {
	gdb, mock := mockGorm(t)

	mock.ExpectQuery(`SELECT[\s\S]*FROM bookings[\s\S]*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	available, err := CheckSlotAvailability(gdb, 3, time.Now().Add(time.Hour), time.Hour)
	require.NoError(t, err)
	assert.False(t, available)
	assert.NoError(t, mock.ExpectationsWereMet())
}
