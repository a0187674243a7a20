// controllers/meal_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Sumanth1803/DietPlan/catalog"
	"github.com/Sumanth1803/DietPlan/logger"
	"github.com/Sumanth1803/DietPlan/metrics"
	"github.com/Sumanth1803/DietPlan/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals     *services.MealService
	Summaries *services.SummaryService
	RT        *services.RealtimeHub
}

func NewMealController(meals *services.MealService, summaries *services.SummaryService, rt *services.RealtimeHub) *MealController {
	return &MealController{Meals: meals, Summaries: summaries, RT: rt}
}

type AddMealInput struct {
	FoodName string `json:"food_name" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"` // YYYY-MM-DD, defaults to today
}

func (mc *MealController) AddMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = d
	}

	meal, err := mc.Meals.AddMeal(userID, input.FoodName, input.MealType, input.Quantity, date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMealType) || errors.Is(err, catalog.ErrUnknownFood) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.ObserveMealLogged(meal.MealType)
	mc.pushSummary(userID, meal.Date)

	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	date := time.Now()
	if q := c.Query("date"); q != "" {
		d, err := time.ParseInLocation("2006-01-02", q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = d
	}

	meals, err := mc.Meals.ListMealsByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (mc *MealController) GetMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.Meals.GetMeal(userID, uint(mealID))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.Meals.DeleteMeal(userID, uint(mealID))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.pushSummary(userID, meal.Date)

	c.Status(http.StatusNoContent)
}

// pushSummary recomputes the day and fans it out to the owner's open
// dashboard sockets.
func (mc *MealController) pushSummary(userID uint, date time.Time) {
	if mc.RT == nil {
		return
	}
	go func() {
		sum, err := mc.Summaries.DaySummary(userID, date)
		if err != nil {
			logger.Log.Errorw("failed to refresh summary for push", "user_id", userID, "err", err)
			return
		}
		mc.RT.Broadcast(userID, gin.H{"event": "summary", "data": sum})
	}()
}
