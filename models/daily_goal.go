package models

import (
    "gorm.io/gorm"
)

// DailyGoal holds a user’s daily nutrient-intake targets. A user without a
// row falls back to the static defaults in the goal service.
type DailyGoal struct {
    gorm.Model
    UserID   uint    `gorm:"uniqueIndex;not null"`
    Calories float64 // e.g. 2000 kcal
    Protein  float64 // e.g. 50 g
    Carbs    float64 // e.g. 275 g
    Fat      float64 // e.g. 70 g
    Fiber    float64 // e.g. 28 g
    Sugar    float64 // e.g. 50 g
    Sodium   float64 // e.g. 2300 mg
}
