package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/scholarlink/scholarlink-api/pricing"
)

func mockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gdb, mock
}

// Tier writes must be a single INSERT ... ON CONFLICT keyed on the composite
// index, so two concurrent saves of the same level converge instead of one
// surfacing a unique violation.
func TestUpsertPriceResolvesOnConflict(t *testing.T) {
	gdb, mock := mockGorm(t)

	mock.ExpectQuery(`INSERT INTO "service_prices"[\s\S]*ON CONFLICT \("service_id","academic_level"\) DO UPDATE SET[\s\S]*"deleted_at"="excluded"\."deleted_at"[\s\S]*RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	price := ServicePrice{ServiceID: 1, AcademicLevel: pricing.Masters, Amount: 15000, Currency: DefaultCurrency}
	require.NoError(t, UpsertPrice(gdb, &price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAddOnResolvesOnConflict(t *testing.T) {
	gdb, mock := mockGorm(t)

	mock.ExpectQuery(`INSERT INTO "service_add_ons"[\s\S]*ON CONFLICT \("service_id","name"\) DO UPDATE SET[\s\S]*"active"="excluded"\."active"[\s\S]*RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	addOn := ServiceAddOn{ServiceID: 1, Name: pricing.AddOnCitations, Amount: 3000, Currency: DefaultCurrency, Active: true}
	require.NoError(t, UpsertAddOn(gdb, &addOn))
	assert.NoError(t, mock.ExpectationsWereMet())
}
