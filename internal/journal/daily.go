package journal

import "time"

// TodaysMeals filters records to those created on the same local
// calendar day as now. Pure function of its inputs; callers recompute it
// after every journal change rather than caching across day boundaries.
func TodaysMeals(records []MealRecord, now time.Time) []MealRecord {
	y, m, d := now.Date()

	var out []MealRecord
	for _, r := range records {
		ry, rm, rd := r.CreatedAt.Local().Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out
}

// TotalCalories sums the estimated calories over the given records.
// Records without an estimate count as zero.
func TotalCalories(records []MealRecord) int {
	total := 0
	for _, r := range records {
		if r.EstimatedCalories != nil {
			total += *r.EstimatedCalories
		}
	}
	return total
}
