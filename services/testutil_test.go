package services_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens gorm over a sqlmock connection. SkipDefaultTransaction
// keeps single-statement writes out of BEGIN/COMMIT so expectations stay
// one-to-one with service calls.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func mealColumns() []string {
	return []string{
		"id", "user_id", "food_name", "meal_type", "quantity",
		"calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium",
		"date",
	}
}
