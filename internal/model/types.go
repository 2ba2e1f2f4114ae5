package model

import "time"

// CatalogFood is a reference food. Nutrition values are per one unit
// (e.g. "1 large" egg), with GramsPerUnit giving the weight of that unit.
type CatalogFood struct {
	ID           string
	Name         string
	Calories     float64
	ProteinG     float64
	CarbsG       float64
	FatG         float64
	Unit         string
	GramsPerUnit float64
	Image        string
	Custom       bool
}

// CatalogExercise is a reference exercise. CaloriesPerMin is the burn rate
// for one minute of the activity.
type CatalogExercise struct {
	ID             string
	Name           string
	CaloriesPerMin float64
	Category       string
	Image          string
	Custom         bool
}

type MealRecord struct {
	ID       string
	Name     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	MealType string
	Image    string
	LoggedAt time.Time
}

type ExerciseRecord struct {
	ID             string
	Name           string
	CaloriesBurned float64
	DurationMin    float64
	Category       string
	Image          string
	LoggedAt       time.Time
}

type Goal struct {
	ID            int64
	Calories      float64
	ProteinG      float64
	CarbsG        float64
	FatG          float64
	EffectiveDate string
	CreatedAt     time.Time
}

// DailyTotals is the running sum of everything logged for one day.
type DailyTotals struct {
	Date     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Burned   float64
}

type WeightRecord struct {
	ID         int64
	WeightKg   float64
	MeasuredAt time.Time
}

type Profile struct {
	Name          string
	Age           int
	HeightCm      float64
	Gender        string
	ActivityLevel string
}
