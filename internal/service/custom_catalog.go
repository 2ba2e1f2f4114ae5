package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexvk/mealtrack/internal/catalog"
	"github.com/alexvk/mealtrack/internal/model"
)

// Defaults substituted for omitted custom-item fields, matching the custom
// food/exercise forms.
const (
	defaultServingUnit    = "1 serving"
	defaultGramsPerUnit   = 100.0
	defaultCaloriesPerMin = 5.0
)

type CustomFoodInput struct {
	Name         string
	Unit         string
	GramsPerUnit float64
	Calories     float64
	ProteinG     float64
	CarbsG       float64
	FatG         float64
	Image        string
}

// CreateCustomFood stores a user-defined food. Only the name is required;
// everything else falls back to the form defaults.
func CreateCustomFood(db *sql.DB, in CustomFoodInput) (model.CatalogFood, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.CatalogFood{}, fmt.Errorf("food name is required")
	}
	if strings.TrimSpace(in.Unit) == "" {
		in.Unit = defaultServingUnit
	}
	if in.GramsPerUnit <= 0 {
		in.GramsPerUnit = defaultGramsPerUnit
	}
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"calories", in.Calories},
		{"protein", in.ProteinG},
		{"carbs", in.CarbsG},
		{"fat", in.FatG},
	} {
		if err := validateNonNegativeFloat(check.name, check.value); err != nil {
			return model.CatalogFood{}, err
		}
	}

	item := model.CatalogFood{
		ID:           "custom-" + newRecordID(time.Now()),
		Name:         in.Name,
		Calories:     in.Calories,
		ProteinG:     in.ProteinG,
		CarbsG:       in.CarbsG,
		FatG:         in.FatG,
		Unit:         in.Unit,
		GramsPerUnit: in.GramsPerUnit,
		Image:        strings.TrimSpace(in.Image),
		Custom:       true,
	}
	_, err := db.Exec(`
INSERT INTO custom_foods(id, name, calories, protein_g, carbs_g, fat_g, unit, grams_per_unit, image)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, item.ID, item.Name, item.Calories, item.ProteinG, item.CarbsG, item.FatG, item.Unit, item.GramsPerUnit, item.Image)
	if err != nil {
		return model.CatalogFood{}, fmt.Errorf("insert custom food: %w", err)
	}
	return item, nil
}

type CustomExerciseInput struct {
	Name           string
	CaloriesPerMin float64
	Category       string
	Image          string
}

// CreateCustomExercise stores a user-defined exercise. Missing burn rate
// falls back to 5 kcal/min and missing category to Cardio.
func CreateCustomExercise(db *sql.DB, in CustomExerciseInput) (model.CatalogExercise, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.CatalogExercise{}, fmt.Errorf("exercise name is required")
	}
	if in.CaloriesPerMin <= 0 {
		in.CaloriesPerMin = defaultCaloriesPerMin
	}
	if strings.TrimSpace(in.Category) == "" {
		in.Category = catalog.CategoryCardio
	}
	if !catalog.ValidCategory(in.Category) {
		return model.CatalogExercise{}, fmt.Errorf("invalid exercise category %q", in.Category)
	}

	item := model.CatalogExercise{
		ID:             "custom-ex-" + newRecordID(time.Now()),
		Name:           in.Name,
		CaloriesPerMin: in.CaloriesPerMin,
		Category:       in.Category,
		Image:          strings.TrimSpace(in.Image),
		Custom:         true,
	}
	_, err := db.Exec(`
INSERT INTO custom_exercises(id, name, calories_per_min, category, image)
VALUES(?, ?, ?, ?, ?)
`, item.ID, item.Name, item.CaloriesPerMin, item.Category, item.Image)
	if err != nil {
		return model.CatalogExercise{}, fmt.Errorf("insert custom exercise: %w", err)
	}
	return item, nil
}

// ListFoods returns the built-in catalog followed by custom foods.
func ListFoods(db *sql.DB) ([]model.CatalogFood, error) {
	items := catalog.Foods()
	rows, err := db.Query(`
SELECT id, name, calories, protein_g, carbs_g, fat_g, unit, grams_per_unit, image
FROM custom_foods
ORDER BY created_at ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list custom foods: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f model.CatalogFood
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.Unit, &f.GramsPerUnit, &f.Image); err != nil {
			return nil, fmt.Errorf("scan custom food: %w", err)
		}
		f.Custom = true
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate custom foods: %w", err)
	}
	return items, nil
}

// ListExercises returns the built-in catalog followed by custom exercises.
func ListExercises(db *sql.DB) ([]model.CatalogExercise, error) {
	items := catalog.Exercises()
	rows, err := db.Query(`
SELECT id, name, calories_per_min, category, image
FROM custom_exercises
ORDER BY created_at ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list custom exercises: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e model.CatalogExercise
		if err := rows.Scan(&e.ID, &e.Name, &e.CaloriesPerMin, &e.Category, &e.Image); err != nil {
			return nil, fmt.Errorf("scan custom exercise: %w", err)
		}
		e.Custom = true
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate custom exercises: %w", err)
	}
	return items, nil
}

// FindFood looks an item up by id or exact (case-insensitive) name across
// the combined catalog.
func FindFood(db *sql.DB, key string) (model.CatalogFood, error) {
	items, err := ListFoods(db)
	if err != nil {
		return model.CatalogFood{}, err
	}
	norm := normalizeName(key)
	for _, item := range items {
		if item.ID == key || normalizeName(item.Name) == norm {
			return item, nil
		}
	}
	return model.CatalogFood{}, fmt.Errorf("food %q not found in catalog", key)
}

// FindExercise looks an item up by id or exact (case-insensitive) name.
func FindExercise(db *sql.DB, key string) (model.CatalogExercise, error) {
	items, err := ListExercises(db)
	if err != nil {
		return model.CatalogExercise{}, err
	}
	norm := normalizeName(key)
	for _, item := range items {
		if item.ID == key || normalizeName(item.Name) == norm {
			return item, nil
		}
	}
	return model.CatalogExercise{}, fmt.Errorf("exercise %q not found in catalog", key)
}
