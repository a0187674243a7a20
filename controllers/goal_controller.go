// controllers/goal_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/Sumanth1803/DietPlan/models"
	"github.com/Sumanth1803/DietPlan/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (gc *GoalController) GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, custom, err := gc.Goals.Effective(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"custom": custom,
		"targets": gin.H{
			"calories": goal.Calories,
			"protein":  goal.Protein,
			"carbs":    goal.Carbs,
			"fat":      goal.Fat,
			"fiber":    goal.Fiber,
			"sugar":    goal.Sugar,
			"sodium":   goal.Sodium,
		},
	})
}

type UpdateGoalsInput struct {
	Calories float64 `json:"calories" binding:"required"`
	Protein  float64 `json:"protein" binding:"required"`
	Carbs    float64 `json:"carbs" binding:"required"`
	Fat      float64 `json:"fat" binding:"required"`
	Fiber    float64 `json:"fiber" binding:"required"`
	Sugar    float64 `json:"sugar" binding:"required"`
	Sodium   float64 `json:"sodium" binding:"required"`
}

func (gc *GoalController) UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var input UpdateGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := gc.Goals.Upsert(userID, models.DailyGoal{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		Fiber:    input.Fiber,
		Sugar:    input.Sugar,
		Sodium:   input.Sodium,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidGoal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
