package services

import (
	"context"
	"time"

	"github.com/Sumanth1803/DietPlan/models"

	"gorm.io/gorm"
)

type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

func (t *NutrientTotals) add(m *models.Meal) {
	t.Calories += m.Calories
	t.Protein += m.Protein
	t.Carbs += m.Carbs
	t.Fat += m.Fat
	t.Fiber += m.Fiber
	t.Sugar += m.Sugar
	t.Sodium += m.Sodium
}

type Progress struct {
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Percent  float64 `json:"percent"` // 0..1, capped
}

// DaySummary feeds the dashboard charts: day totals, the per-meal-type
// breakdown and percent-of-target per nutrient.
type DaySummary struct {
	Date      string                    `json:"date"`
	MealCount int                       `json:"meal_count"`
	Totals    NutrientTotals            `json:"totals"`
	ByMeal    map[string]NutrientTotals `json:"by_meal"`
	Progress  map[string]Progress       `json:"progress"`
}

type SummaryService struct {
	db    *gorm.DB
	goals *GoalService
	cache *SummaryCache
}

func NewSummaryService(db *gorm.DB, goals *GoalService, cache *SummaryCache) *SummaryService {
	return &SummaryService{db: db, goals: goals, cache: cache}
}

func (s *SummaryService) DaySummary(userID uint, date time.Time) (*DaySummary, error) {
	start := dayStart(date)

	if cached, ok := s.cache.Get(context.Background(), userID, start); ok {
		return cached, nil
	}

	end := start.Add(24 * time.Hour)
	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	goal, _, err := s.goals.Effective(userID)
	if err != nil {
		return nil, err
	}

	out := &DaySummary{
		Date:      start.Format("2006-01-02"),
		MealCount: len(meals),
		ByMeal: map[string]NutrientTotals{
			models.MealBreakfast: {},
			models.MealLunch:     {},
			models.MealDinner:    {},
		},
	}

	for i := range meals {
		m := &meals[i]
		out.Totals.add(m)
		bucket := out.ByMeal[m.MealType]
		bucket.add(m)
		out.ByMeal[m.MealType] = bucket
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	out.Progress = map[string]Progress{
		"calories": {Consumed: out.Totals.Calories, Target: goal.Calories, Percent: pct(out.Totals.Calories, goal.Calories)},
		"protein":  {Consumed: out.Totals.Protein, Target: goal.Protein, Percent: pct(out.Totals.Protein, goal.Protein)},
		"carbs":    {Consumed: out.Totals.Carbs, Target: goal.Carbs, Percent: pct(out.Totals.Carbs, goal.Carbs)},
		"fat":      {Consumed: out.Totals.Fat, Target: goal.Fat, Percent: pct(out.Totals.Fat, goal.Fat)},
		"fiber":    {Consumed: out.Totals.Fiber, Target: goal.Fiber, Percent: pct(out.Totals.Fiber, goal.Fiber)},
		"sugar":    {Consumed: out.Totals.Sugar, Target: goal.Sugar, Percent: pct(out.Totals.Sugar, goal.Sugar)},
		"sodium":   {Consumed: out.Totals.Sodium, Target: goal.Sodium, Percent: pct(out.Totals.Sodium, goal.Sodium)},
	}

	s.cache.Set(context.Background(), userID, start, out)
	return out, nil
}
