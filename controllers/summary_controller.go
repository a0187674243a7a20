package controllers

import (
	"net/http"
	"time"

	"github.com/Sumanth1803/DietPlan/services"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{Summaries: summaries}
}

func (sc *SummaryController) GetSummary(c *gin.Context) {
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

	sum, err := sc.Summaries.DaySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sum)
}
