package main

import (
	"log"
	"os"

	"github.com/Sumanth1803/DietPlan/config"
	"github.com/Sumanth1803/DietPlan/controllers"
	"github.com/Sumanth1803/DietPlan/logger"
	"github.com/Sumanth1803/DietPlan/routes"
	"github.com/Sumanth1803/DietPlan/services"
	"github.com/Sumanth1803/DietPlan/utils"
)

func main() {
	config.LoadEnv()
	if err := logger.Initialize(config.LogLevel()); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	config.InitDB()
	config.InitRedis()
	utils.InitSES()

	cache := services.NewSummaryCache(config.Redis)
	goalSvc := services.NewGoalService(config.DB)
	mealSvc := services.NewMealService(config.DB, cache)
	summarySvc := services.NewSummaryService(config.DB, goalSvc, cache)
	adviceSvc := services.NewAdviceService(summarySvc)
	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(services.NewAuthService(config.DB)),
		Users:    controllers.NewUserController(services.NewUserService(config.DB)),
		Meals:    controllers.NewMealController(mealSvc, summarySvc, hub),
		Summary:  controllers.NewSummaryController(summarySvc),
		Goals:    controllers.NewGoalController(goalSvc),
		Advice:   controllers.NewRecommendationController(adviceSvc),
		Realtime: controllers.NewRealtimeController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatalw("server stopped", "err", err)
	}
}
