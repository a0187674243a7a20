package catalog

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnknownFood = errors.New("food not in catalog")

// Food is one catalog entry with per-serving nutrient values.
type Food struct {
	Name     string  `json:"name"`
	Serving  string  `json:"serving"`
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
	Fiber    float64 `json:"fiber"`    // g
	Sugar    float64 `json:"sugar"`    // g
	Sodium   float64 `json:"sodium"`   // mg
}

// The fixed food table. Values are per single serving; quantity scaling
// happens at logging time via Multiplier.
var foods = []Food{
	{Name: "oatmeal", Serving: "1 bowl", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Fiber: 4, Sugar: 1, Sodium: 115},
	{Name: "banana", Serving: "1 medium", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, Sugar: 14, Sodium: 1},
	{Name: "chicken breast", Serving: "100 g", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74},
	{Name: "white rice", Serving: "1 cup", Calories: 205, Protein: 4.3, Carbs: 45, Fat: 0.4, Fiber: 0.6, Sugar: 0.1, Sodium: 2},
	{Name: "broccoli", Serving: "1 cup", Calories: 55, Protein: 3.7, Carbs: 11, Fat: 0.6, Fiber: 5.1, Sugar: 2.2, Sodium: 50},
	{Name: "salmon", Serving: "1 fillet", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Fiber: 0, Sugar: 0, Sodium: 59},
	{Name: "egg", Serving: "1 large", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Fiber: 0, Sugar: 0.6, Sodium: 62},
	{Name: "whole milk", Serving: "1 glass", Calories: 149, Protein: 7.7, Carbs: 11.7, Fat: 8, Fiber: 0, Sugar: 12.3, Sodium: 105},
	{Name: "apple", Serving: "1 medium", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, Sugar: 19, Sodium: 2},
	{Name: "greek yogurt", Serving: "1 cup", Calories: 100, Protein: 17, Carbs: 6, Fat: 0.7, Fiber: 0, Sugar: 4, Sodium: 61},
}

var byName = func() map[string]Food {
	m := make(map[string]Food, len(foods))
	for _, f := range foods {
		m[f.Name] = f
	}
	return m
}()

// List returns all catalog entries in table order.
func List() []Food {
	out := make([]Food, len(foods))
	copy(out, foods)
	return out
}

// Resolve looks a food up by name, case- and whitespace-insensitively.
func Resolve(name string) (Food, error) {
	f, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Food{}, ErrUnknownFood
	}
	return f, nil
}

// Multiplier extracts the serving multiplier from the quantity text the
// user typed: the leading decimal number of “2” or “1.5 bowls”. Anything
// unparseable or non-positive counts as a single serving.
func Multiplier(quantity string) float64 {
	s := strings.TrimSpace(quantity)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// Scale returns a copy of f with every nutrient multiplied by n.
func Scale(f Food, n float64) Food {
	f.Calories *= n
	f.Protein *= n
	f.Carbs *= n
	f.Fat *= n
	f.Fiber *= n
	f.Sugar *= n
	f.Sodium *= n
	return f
}
