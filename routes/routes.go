package routes

import (
	"github.com/Sumanth1803/DietPlan/controllers"
	"github.com/Sumanth1803/DietPlan/metrics"
	"github.com/Sumanth1803/DietPlan/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Meals    *controllers.MealController
	Summary  *controllers.SummaryController
	Goals    *controllers.GoalController
	Advice   *controllers.RecommendationController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggingMiddleware())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
		auth.POST("/verify-mfa", ctl.Auth.VerifyMFA)
		auth.POST("/forgot-password", ctl.Auth.ForgotPassword)
		auth.POST("/reset-password", ctl.Auth.ResetPassword)
	}

	// Everything below requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", ctl.Users.GetProfile)
		api.PUT("/user/profile", ctl.Users.UpdateProfile)

		api.GET("/foods", controllers.ListFoods)

		api.POST("/meals", ctl.Meals.AddMeal)
		api.GET("/meals", ctl.Meals.ListMeals)
		api.GET("/meals/:id", ctl.Meals.GetMeal)
		api.DELETE("/meals/:id", ctl.Meals.DeleteMeal)

		api.GET("/summary", ctl.Summary.GetSummary)

		api.GET("/goals", ctl.Goals.GetGoals)
		api.PUT("/goals", ctl.Goals.UpdateGoals)

		api.GET("/recommendations", ctl.Advice.GetRecommendations)

		api.GET("/ws/dashboard", ctl.Realtime.DashboardWS)
	}

	return r
}
