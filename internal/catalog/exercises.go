package catalog

import "github.com/alexvk/mealtrack/internal/model"

// Exercise categories as shown in the workout browser.
const (
	CategoryCardio      = "Cardio"
	CategoryStrength    = "Strength"
	CategoryFlexibility = "Flexibility"
	CategorySports      = "Sports"
)

var builtinExercises = []model.CatalogExercise{
	{ID: "e1", Name: "Running (Moderate)", CaloriesPerMin: 11, Category: CategoryCardio, Image: "https://images.unsplash.com/photo-1502904550040-7534597429ae?w=150&q=80"},
	{ID: "e2", Name: "Cycling (Indoor)", CaloriesPerMin: 7, Category: CategoryCardio, Image: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=150&q=80"},
	{ID: "e3", Name: "Weight Lifting", CaloriesPerMin: 6, Category: CategoryStrength, Image: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=150&q=80"},
	{ID: "e4", Name: "Yoga", CaloriesPerMin: 4, Category: CategoryFlexibility, Image: "https://images.unsplash.com/photo-1544367563-12123d8966cd?w=150&q=80"},
	{ID: "e5", Name: "Swimming", CaloriesPerMin: 10, Category: CategoryCardio, Image: "https://images.unsplash.com/photo-1530549387789-4c1017266635?w=150&q=80"},
	{ID: "e6", Name: "HIIT Workout", CaloriesPerMin: 13, Category: CategoryCardio, Image: "https://images.unsplash.com/photo-1601422407692-ec4eeec1d9b3?w=150&q=80"},
	{ID: "e7", Name: "Walking (Brisk)", CaloriesPerMin: 4, Category: CategoryCardio, Image: "https://images.unsplash.com/photo-1476480862126-209bfaa8edc8?w=150&q=80"},
	{ID: "e8", Name: "Basketball", CaloriesPerMin: 8, Category: CategorySports, Image: "https://images.unsplash.com/photo-1546519638-68e109498ee3?w=150&q=80"},
	{ID: "e9", Name: "Jump Rope", CaloriesPerMin: 12, Category: CategoryCardio, Image: "https://images.unsplash.com/photo-1599058945522-28d584b6f0ff?w=150&q=80"},
	{ID: "e10", Name: "Pilates", CaloriesPerMin: 5, Category: CategoryFlexibility, Image: "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=150&q=80"},
}

// Exercises returns a copy of the built-in exercise catalog.
func Exercises() []model.CatalogExercise {
	out := make([]model.CatalogExercise, len(builtinExercises))
	copy(out, builtinExercises)
	return out
}

// ValidCategory reports whether name is one of the known exercise categories.
func ValidCategory(name string) bool {
	switch name {
	case CategoryCardio, CategoryStrength, CategoryFlexibility, CategorySports:
		return true
	}
	return false
}
