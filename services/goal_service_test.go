package services_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumanth1803/DietPlan/models"
	"github.com/Sumanth1803/DietPlan/services"
)

func TestGoalService_Effective(t *testing.T) {
	t.Run("defaults when no row", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := services.NewGoalService(db)

		mock.ExpectQuery(`SELECT \* FROM "daily_goals" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		goal, custom, err := svc.Effective(42)
		require.NoError(t, err)
		assert.False(t, custom)
		assert.Equal(t, services.DefaultTargets.Calories, goal.Calories)
		assert.Equal(t, services.DefaultTargets.Sodium, goal.Sodium)
	})

	t.Run("user row wins", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := services.NewGoalService(db)

		mock.ExpectQuery(`SELECT \* FROM "daily_goals" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium"}).
				AddRow(1, 42, 1800, 130, 180, 55, 35, 30, 1500))

		goal, custom, err := svc.Effective(42)
		require.NoError(t, err)
		assert.True(t, custom)
		assert.InDelta(t, 1800, goal.Calories, 1e-9)
		assert.InDelta(t, 130, goal.Protein, 1e-9)
	})
}

func TestGoalService_Upsert(t *testing.T) {
	valid := models.DailyGoal{
		Calories: 1800, Protein: 130, Carbs: 180, Fat: 55, Fiber: 35, Sugar: 30, Sodium: 1500,
	}

	t.Run("rejects non-positive targets", func(t *testing.T) {
		db, _ := newMockDB(t)
		svc := services.NewGoalService(db)

		bad := valid
		bad.Protein = 0
		_, err := svc.Upsert(42, bad)
		assert.ErrorIs(t, err, services.ErrInvalidGoal)
	})

	t.Run("creates when missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := services.NewGoalService(db)

		mock.ExpectQuery(`SELECT \* FROM "daily_goals" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "daily_goals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		goal, err := svc.Upsert(42, valid)
		require.NoError(t, err)
		assert.Equal(t, uint(5), goal.ID)
		assert.Equal(t, uint(42), goal.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("updates existing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := services.NewGoalService(db)

		mock.ExpectQuery(`SELECT \* FROM "daily_goals" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "calories", "protein", "carbs", "fat", "fiber", "sugar", "sodium"}).
				AddRow(5, 42, 2000, 50, 275, 70, 28, 50, 2300))
		mock.ExpectExec(`UPDATE "daily_goals" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		goal, err := svc.Upsert(42, valid)
		require.NoError(t, err)
		assert.InDelta(t, 1800, goal.Calories, 1e-9)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
