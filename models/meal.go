package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal types accepted by the API (stored lowercase).
const (
    MealBreakfast = "breakfast"
    MealLunch     = "lunch"
    MealDinner    = "dinner"
)

func ValidMealType(t string) bool {
    switch t {
    case MealBreakfast, MealLunch, MealDinner:
        return true
    }
    return false
}

// Meal is one logged food entry. The nutrient columns are a snapshot taken
// at logging time (catalog values scaled by quantity); they are never
// recomputed afterwards. Meals are created and deleted, never updated.
type Meal struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"` // FK → users.id
    FoodName string `gorm:"not null"`
    MealType string `gorm:"not null"` // breakfast|lunch|dinner
    Quantity string // free text as the user typed it, e.g. “2 bowls”

    Calories float64 // kcal
    Protein  float64 // g
    Carbs    float64 // g
    Fat      float64 // g
    Fiber    float64 // g
    Sugar    float64 // g
    Sodium   float64 // mg

    Date time.Time `gorm:"index;not null"` // day the meal belongs to
}
