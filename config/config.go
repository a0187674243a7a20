package config

import (
	"fmt"
	"os"

	"github.com/Sumanth1803/DietPlan/logger"
	"github.com/Sumanth1803/DietPlan/models"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Redis is nil when REDIS_ADDR is not configured; callers must treat the
// cache as optional.
var Redis *redis.Client

// LoadEnv reads .env if present. A missing file is fine in deployed
// environments where variables come from the platform.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Infow("no .env file loaded", "err", err)
	}
}

// LogLevel returns the configured log level, defaulting to info. Call it
// after LoadEnv so a level set only in .env is honored.
func LogLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "info"
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Log.Fatalw("failed to connect to database", "err", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.DailyGoal{},
	)
	if err != nil {
		logger.Log.Fatalw("automigrate failed", "err", err)
	}
}

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Log.Infow("REDIS_ADDR not set, summary cache disabled")
		return
	}
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
