// Package catalog filters and buckets meal and restaurant collections.
// Everything here is pure: inputs are never modified and results are
// always non-nil slices.
package catalog

import (
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
)

// MealFilter is ANDed together; zero fields match everything.
type MealFilter struct {
	Query    string
	Category string
	MealTime models.MealTime
}

// bucketWords are matched against category tags when a meal has no explicit
// meal-time.
var bucketWords = map[models.MealTime][]string{
	models.MealTimeBreakfast: {"breakfast", "فطور"},
	models.MealTimeLunch:     {"lunch", "غداء"},
	models.MealTimeDinner:    {"dinner", "عشاء"},
}

// FilterMeals returns the meals matching f, in input order.
func FilterMeals(meals []models.Meal, f MealFilter) []models.Meal {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if q != "" && !mealMatchesQuery(m, q) {
			continue
		}
		if !HasCategory(m, f.Category) {
			continue
		}
		if f.MealTime != models.MealTimeNone && MealTimeOf(m) != f.MealTime {
			continue
		}
		out = append(out, m)
	}
	return out
}

func mealMatchesQuery(m models.Meal, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Restaurant), q) {
		return true
	}
	for _, ing := range m.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// HasCategory reports whether m carries the tag. "" and "all" match any meal.
func HasCategory(m models.Meal, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, models.CategoryAll) {
		return true
	}
	for _, c := range m.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// MealTimeOf returns the explicit meal-time tag, or the first bucket whose
// English or Arabic word appears inside a category tag.
func MealTimeOf(m models.Meal) models.MealTime {
	if m.MealTime != models.MealTimeNone {
		return m.MealTime
	}
	for _, bucket := range models.MealTimes {
		for _, c := range m.Categories {
			lc := strings.ToLower(c)
			for _, w := range bucketWords[bucket] {
				if strings.Contains(lc, w) {
					return bucket
				}
			}
		}
	}
	return models.MealTimeNone
}

// GroupByMealTime buckets meals by MealTimeOf. Every bucket in
// models.MealTimes is present; meals without a bucket are left out.
func GroupByMealTime(meals []models.Meal) map[models.MealTime][]models.Meal {
	groups := make(map[models.MealTime][]models.Meal, len(models.MealTimes))
	for _, b := range models.MealTimes {
		groups[b] = []models.Meal{}
	}
	for _, m := range meals {
		if b := MealTimeOf(m); b != models.MealTimeNone {
			groups[b] = append(groups[b], m)
		}
	}
	return groups
}

// FilterRestaurants matches query against name or cuisine type.
func FilterRestaurants(rs []models.Restaurant, query string) []models.Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Restaurant, 0, len(rs))
	for _, r := range rs {
		if q == "" ||
			strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.CuisineType), q) {
			out = append(out, r)
		}
	}
	return out
}
