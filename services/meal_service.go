package services

import (
	"context"
	"errors"
	"time"

	"github.com/Sumanth1803/DietPlan/catalog"
	"github.com/Sumanth1803/DietPlan/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidMealType = errors.New("meal type must be breakfast, lunch or dinner")
	ErrMealNotFound    = errors.New("meal not found")
)

type MealService struct {
	db    *gorm.DB
	cache *SummaryCache
}

func NewMealService(db *gorm.DB, cache *SummaryCache) *MealService {
	return &MealService{db: db, cache: cache}
}

// AddMeal resolves the food against the catalog, scales the per-serving
// nutrients by the quantity multiplier and persists the snapshot. The
// stored values are never recomputed if the catalog changes later.
func (s *MealService) AddMeal(userID uint, foodName, mealType, quantity string, date time.Time) (*models.Meal, error) {
	if !models.ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}

	food, err := catalog.Resolve(foodName)
	if err != nil {
		return nil, err
	}
	scaled := catalog.Scale(food, catalog.Multiplier(quantity))

	meal := models.Meal{
		UserID:   userID,
		FoodName: food.Name,
		MealType: mealType,
		Quantity: quantity,
		Calories: scaled.Calories,
		Protein:  scaled.Protein,
		Carbs:    scaled.Carbs,
		Fat:      scaled.Fat,
		Fiber:    scaled.Fiber,
		Sugar:    scaled.Sugar,
		Sodium:   scaled.Sodium,
		Date:     dayStart(date),
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background(), userID, meal.Date)
	return &meal, nil
}

func (s *MealService) ListMealsByDate(userID uint, date time.Time) ([]models.Meal, error) {
	start := dayStart(date)
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes the owner's meal and returns it. The fetch-first
// keeps deletes of other users' meals indistinguishable from missing ones.
func (s *MealService) DeleteMeal(userID, mealID uint) (*models.Meal, error) {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Meal{}, meal.ID).Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(context.Background(), userID, meal.Date)
	return meal, nil
}

// dayStart normalizes t to local midnight; the dashboard day window is
// [dayStart, dayStart+24h).
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
