package service

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/alexvk/mealtrack/internal/model"
)

func AddWeight(db *sql.DB, weightKg float64, measuredAt time.Time) (int64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	if measuredAt.IsZero() {
		measuredAt = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO weight_log(weight_kg, measured_at) VALUES(?, ?)
`, weightKg, measuredAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("add weight record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve weight record id: %w", err)
	}
	return id, nil
}

// WeightHistory returns all weight records, oldest first.
func WeightHistory(db *sql.DB) ([]model.WeightRecord, error) {
	rows, err := db.Query(`
SELECT id, weight_kg, measured_at FROM weight_log ORDER BY measured_at ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list weight history: %w", err)
	}
	defer rows.Close()

	records := make([]model.WeightRecord, 0)
	for rows.Next() {
		var r model.WeightRecord
		var measuredAtRaw string
		if err := rows.Scan(&r.ID, &r.WeightKg, &measuredAtRaw); err != nil {
			return nil, fmt.Errorf("scan weight record: %w", err)
		}
		measuredAt, err := time.Parse(time.RFC3339, measuredAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse measured_at: %w", err)
		}
		r.MeasuredAt = measuredAt
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight history: %w", err)
	}
	return records, nil
}

type WeightSummary struct {
	CurrentKg   float64
	StartKg     float64
	ChangeKg    float64
	BMI         float64
	BMICategory string
}

// SummarizeWeight reports the latest weight against the first recorded one,
// with BMI derived from the profile height. No records yields nil.
func SummarizeWeight(db *sql.DB) (*WeightSummary, error) {
	history, err := WeightHistory(db)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}
	profile, err := GetProfile(db)
	if err != nil {
		return nil, err
	}

	current := history[len(history)-1].WeightKg
	start := history[0].WeightKg
	summary := &WeightSummary{
		CurrentKg: current,
		StartKg:   start,
		ChangeKg:  math.Round((current-start)*10) / 10,
	}
	summary.BMI = BMI(current, profile.HeightCm)
	summary.BMICategory = BMICategory(summary.BMI)
	return summary, nil
}

// BMI computes body mass index from kilograms and centimeters, rounded to
// one decimal place. Zero height yields zero rather than dividing.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
