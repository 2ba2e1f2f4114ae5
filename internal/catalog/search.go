package catalog

import (
	"strings"

	"github.com/alexvk/mealtrack/internal/model"
)

// SearchFoods filters items by case-insensitive substring match on the name.
// An empty query returns everything.
func SearchFoods(items []model.CatalogFood, query string) []model.CatalogFood {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]model.CatalogFood, 0, len(items))
	for _, item := range items {
		if query == "" || strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
		}
	}
	return out
}

// FilterExercises filters by name query, falling back to the category tab
// when no query is given, matching the workout browser behavior.
func FilterExercises(items []model.CatalogExercise, category, query string) []model.CatalogExercise {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]model.CatalogExercise, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		if query == "" && category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}
