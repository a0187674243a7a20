package services

import (
	"fmt"
	"time"
)

// Severity categorizes how serious a finding is.
type Severity string

const (
	Info    Severity = "info"
	Caution Severity = "caution"
	High    Severity = "high"
)

// Recommendation is a structured finding the UI can render directly.
type Recommendation struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Nutrient string   `json:"nutrient,omitempty"`
	Value    float64  `json:"value,omitempty"`
	Target   float64  `json:"target,omitempty"`
}

type AdviceService struct {
	summaries *SummaryService
}

func NewAdviceService(summaries *SummaryService) *AdviceService {
	return &AdviceService{summaries: summaries}
}

func (s *AdviceService) Recommendations(userID uint, date time.Time) ([]Recommendation, error) {
	sum, err := s.summaries.DaySummary(userID, date)
	if err != nil {
		return nil, err
	}

	targets := map[string]float64{}
	for name, p := range sum.Progress {
		targets[name] = p.Target
	}
	return BuildRecommendations(sum.Totals, targets, sum.MealCount), nil
}

// BuildRecommendations applies the fixed threshold rules to one day's
// totals. Deficiency rules fire below half the target, excess rules above
// the target, escalating past 150%.
func BuildRecommendations(totals NutrientTotals, targets map[string]float64, mealCount int) []Recommendation {
	recs := []Recommendation{}

	if mealCount == 0 {
		return append(recs, Recommendation{
			Code:     "no_meals_logged",
			Severity: Info,
			Message:  "No meals logged yet today. Log your meals to get dietary feedback.",
		})
	}

	low := func(code, nutrient, unit string, value, target float64, sev Severity) {
		recs = append(recs, Recommendation{
			Code:     code,
			Severity: sev,
			Message:  fmt.Sprintf("You're at %.0f of %.0f %s %s for the day. Consider adding a %s-rich food.", value, target, unit, nutrient, nutrient),
			Nutrient: nutrient,
			Value:    value,
			Target:   target,
		})
	}
	over := func(code, nutrient, unit string, value, target float64, sev Severity) {
		recs = append(recs, Recommendation{
			Code:     code,
			Severity: sev,
			Message:  fmt.Sprintf("You've had %.0f %s of %s against a daily target of %.0f. Go easy on %s for the rest of the day.", value, unit, nutrient, target, nutrient),
			Nutrient: nutrient,
			Value:    value,
			Target:   target,
		})
	}

	// --- Deficiencies (below half the daily target) ---
	if t := targets["calories"]; t > 0 && totals.Calories < 0.5*t {
		low("calories_low", "calories", "kcal", totals.Calories, t, Caution)
	}
	if t := targets["protein"]; t > 0 && totals.Protein < 0.5*t {
		low("protein_low", "protein", "g", totals.Protein, t, Caution)
	}
	if t := targets["fiber"]; t > 0 && totals.Fiber < 0.5*t {
		low("fiber_low", "fiber", "g", totals.Fiber, t, Info)
	}

	// --- Excesses (above the daily target, high past 150%) ---
	if t := targets["calories"]; t > 0 && totals.Calories > t {
		sev := Caution
		if totals.Calories > 1.5*t {
			sev = High
		}
		over("calories_high", "calories", "kcal", totals.Calories, t, sev)
	}
	if t := targets["sugar"]; t > 0 && totals.Sugar > t {
		sev := Caution
		if totals.Sugar > 1.5*t {
			sev = High
		}
		over("sugar_high", "sugar", "g", totals.Sugar, t, sev)
	}
	if t := targets["sodium"]; t > 0 && totals.Sodium > t {
		sev := Caution
		if totals.Sodium > 1.5*t {
			sev = High
		}
		over("sodium_high", "sodium", "mg", totals.Sodium, t, sev)
	}
	if t := targets["fat"]; t > 0 && totals.Fat > t {
		over("fat_high", "fat", "g", totals.Fat, t, Caution)
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Code:     "on_track",
			Severity: Info,
			Message:  "Your intake is on track against today's targets.",
		})
	}
	return recs
}
