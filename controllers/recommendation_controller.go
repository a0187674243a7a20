package controllers

import (
	"net/http"
	"time"

	"github.com/Sumanth1803/DietPlan/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Advice *services.AdviceService
}

func NewRecommendationController(advice *services.AdviceService) *RecommendationController {
	return &RecommendationController{Advice: advice}
}

func (rc *RecommendationController) GetRecommendations(c *gin.Context) {
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

	recs, err := rc.Advice.Recommendations(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
