package controllers

import (
	"net/http"

	"github.com/Sumanth1803/DietPlan/catalog"

	"github.com/gin-gonic/gin"
)

// ListFoods returns the fixed catalog; the client uses it to populate the
// food dropdown.
func ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": catalog.List()})
}
