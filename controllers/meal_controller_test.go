package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Sumanth1803/DietPlan/controllers"
	"github.com/Sumanth1803/DietPlan/services"
)

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

// fakeAuth stands in for the JWT middleware and pins the owner identity.
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newMealRouter(t *testing.T, db *gorm.DB, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cache := services.NewSummaryCache(nil)
	goals := services.NewGoalService(db)
	meals := services.NewMealService(db, cache)
	summaries := services.NewSummaryService(db, goals, cache)
	mc := controllers.NewMealController(meals, summaries, nil)

	r := gin.New()
	r.Use(fakeAuth(userID))
	r.POST("/meals", mc.AddMeal)
	r.GET("/meals", mc.ListMeals)
	r.GET("/meals/:id", mc.GetMeal)
	r.DELETE("/meals/:id", mc.DeleteMeal)
	return r
}

func TestMealController_AddMeal(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := newMealRouter(t, db, 42)

		mock.ExpectQuery(`INSERT INTO "meals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		body := `{"food_name":"banana","meal_type":"lunch","quantity":"2","date":"2024-03-10"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/meals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var got struct {
			ID       uint    `json:"ID"`
			FoodName string  `json:"FoodName"`
			Calories float64 `json:"Calories"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(7), got.ID)
		assert.Equal(t, "banana", got.FoodName)
		assert.InDelta(t, 210, got.Calories, 1e-9)
	})

	t.Run("unknown food is a client error", func(t *testing.T) {
		db, _ := newMockDB(t)
		r := newMealRouter(t, db, 42)

		body := `{"food_name":"pizza","meal_type":"lunch","quantity":"1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/meals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid meal type is a client error", func(t *testing.T) {
		db, _ := newMockDB(t)
		r := newMealRouter(t, db, 42)

		body := `{"food_name":"banana","meal_type":"brunch"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/meals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		db, _ := newMockDB(t)
		r := newMealRouter(t, db, 42)

		body := `{"food_name":"banana","meal_type":"lunch","date":"10/03/2024"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/meals", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMealController_DeleteMeal(t *testing.T) {
	t.Run("missing meal is 404", func(t *testing.T) {
		db, mock := newMockDB(t)
		r := newMealRouter(t, db, 42)

		mock.ExpectQuery(`SELECT \* FROM "meals" WHERE \(id = \$1 AND user_id = \$2\) AND "meals"\."deleted_at" IS NULL`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/meals/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		db, _ := newMockDB(t)
		r := newMealRouter(t, db, 42)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/meals/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMealController_ListMeals(t *testing.T) {
	db, mock := newMockDB(t)
	r := newMealRouter(t, db, 42)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE \(user_id = \$1 AND date >= \$2 AND date < \$3\) AND "meals"\."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "food_name", "meal_type", "calories", "date"}).
			AddRow(1, 42, "oatmeal", "breakfast", 150, day))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/meals?date=2024-03-10", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "oatmeal")
}

func TestListFoods(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/foods", controllers.ListFoods)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/foods", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Foods []struct {
			Name string `json:"name"`
		} `json:"foods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Foods, 10)
}
