// Package journal owns the persisted meal log: records, the durable
// store, and the daily projection over it.
package journal

import "time"

// MealType classifies a meal record.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// Valid reports whether t is one of the known meal types.
func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// Label returns the display label for a meal type. Unknown values pass
// through unchanged.
func (t MealType) Label() string {
	switch t {
	case Breakfast:
		return "Breakfast"
	case Lunch:
		return "Lunch"
	case Dinner:
		return "Dinner"
	case Snack:
		return "Snack"
	}
	return string(t)
}

// MealRecord is one persisted journal entry. Immutable once stored;
// CreatedAt is assigned exactly once, when the record enters the journal.
type MealRecord struct {
	ID                string            `json:"id"`
	MealType          MealType          `json:"meal_type"`
	MealTime          string            `json:"meal_time"`
	Description       string            `json:"description"`
	PhotoData         string            `json:"photo_data"`
	EstimatedCalories *int              `json:"estimated_calories,omitempty"`
	Analysis          *EstimationResult `json:"analysis_data,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// EstimationResult is the structured calorie estimate kept alongside the
// scalar value for display. Constituent calories need not sum to the total.
type EstimationResult struct {
	TotalCalories int            `json:"total_calories"`
	Confidence    float64        `json:"confidence"`
	DetectedFoods []DetectedFood `json:"detected_foods"`
}

// DetectedFood is one item the estimator claims to have found in the photo.
type DetectedFood struct {
	Name       string  `json:"name"`
	Calories   int     `json:"calories"`
	Confidence float64 `json:"confidence"`
}
