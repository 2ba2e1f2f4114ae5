package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexvk/mealtrack/internal/cart"
	"github.com/alexvk/mealtrack/internal/model"
)

// Meal types shown as tabs in the add-food flow.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

func validMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealTypeForHour picks the meal tab preselected for the current hour.
func MealTypeForHour(hour int) string {
	switch {
	case hour < 11:
		return MealBreakfast
	case hour < 15:
		return MealLunch
	case hour < 19:
		return MealDinner
	default:
		return MealSnack
	}
}

// ConfirmMealCart turns every cart line into an immutable meal record and
// applies the batch's summed macros to the day's running totals. The record
// inserts and the totals update commit in one transaction, so a reader never
// observes a partially applied batch.
func ConfirmMealCart(db *sql.DB, c *cart.FoodCart, mealType string, now time.Time) ([]model.MealRecord, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	if mealType == "" {
		mealType = MealTypeForHour(now.Hour())
	}
	if !validMealType(mealType) {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}

	records := make([]model.MealRecord, 0, c.Len())
	var batch cart.MacroTotals
	for _, line := range c.Lines() {
		macros := line.Macros()
		records = append(records, model.MealRecord{
			ID:       newRecordID(now),
			Name:     line.Item.Name,
			Calories: macros.Calories,
			ProteinG: macros.ProteinG,
			CarbsG:   macros.CarbsG,
			FatG:     macros.FatG,
			MealType: mealType,
			Image:    line.Item.Image,
			LoggedAt: now,
		})
		batch.Calories += macros.Calories
		batch.ProteinG += macros.ProteinG
		batch.CarbsG += macros.CarbsG
		batch.FatG += macros.FatG
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin confirm tx: %w", err)
	}
	for _, r := range records {
		if _, err := tx.Exec(`
INSERT INTO log_records(id, kind, name, calories, protein_g, carbs_g, fat_g, record_type, image, logged_at)
VALUES(?, 'meal', ?, ?, ?, ?, ?, ?, ?, ?)
`, r.ID, r.Name, r.Calories, r.ProteinG, r.CarbsG, r.FatG, r.MealType, r.Image, r.LoggedAt.Format(time.RFC3339)); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert meal record: %w", err)
		}
	}
	if _, err := tx.Exec(`
INSERT INTO daily_totals(date, calories, protein_g, carbs_g, fat_g, burned)
VALUES(?, ?, ?, ?, ?, 0)
ON CONFLICT(date) DO UPDATE SET
  calories=calories+excluded.calories,
  protein_g=protein_g+excluded.protein_g,
  carbs_g=carbs_g+excluded.carbs_g,
  fat_g=fat_g+excluded.fat_g,
  updated_at=CURRENT_TIMESTAMP
`, dayKey(now), batch.Calories, batch.ProteinG, batch.CarbsG, batch.FatG); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("apply batch to daily totals: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm tx: %w", err)
	}
	return records, nil
}

// ConfirmExerciseCart is the exercise counterpart of ConfirmMealCart: one
// activity record per line plus a single burned-calories batch update.
func ConfirmExerciseCart(db *sql.DB, c *cart.ExerciseCart, now time.Time) ([]model.ExerciseRecord, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	records := make([]model.ExerciseRecord, 0, c.Len())
	var batchBurn float64
	for _, line := range c.Lines() {
		burn := line.Burn()
		records = append(records, model.ExerciseRecord{
			ID:             newRecordID(now),
			Name:           line.Item.Name,
			CaloriesBurned: burn,
			DurationMin:    line.Qty.Value(),
			Category:       line.Item.Category,
			Image:          line.Item.Image,
			LoggedAt:       now,
		})
		batchBurn += burn
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin confirm tx: %w", err)
	}
	for _, r := range records {
		if _, err := tx.Exec(`
INSERT INTO log_records(id, kind, name, calories, duration_min, record_type, image, logged_at)
VALUES(?, 'exercise', ?, ?, ?, ?, ?, ?)
`, r.ID, r.Name, r.CaloriesBurned, r.DurationMin, r.Category, r.Image, r.LoggedAt.Format(time.RFC3339)); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert exercise record: %w", err)
		}
	}
	if _, err := tx.Exec(`
INSERT INTO daily_totals(date, burned)
VALUES(?, ?)
ON CONFLICT(date) DO UPDATE SET
  burned=burned+excluded.burned,
  updated_at=CURRENT_TIMESTAMP
`, dayKey(now), batchBurn); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("apply batch to daily totals: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm tx: %w", err)
	}
	return records, nil
}

// ListMealRecords returns the day's meal records, most recent first.
func ListMealRecords(db *sql.DB, date time.Time) ([]model.MealRecord, error) {
	start, end := dayBounds(date)
	rows, err := db.Query(`
SELECT id, name, calories, protein_g, carbs_g, fat_g, record_type, image, logged_at
FROM log_records
WHERE kind = 'meal' AND logged_at >= ? AND logged_at < ?
ORDER BY logged_at DESC, id DESC
`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list meal records: %w", err)
	}
	defer rows.Close()

	records := make([]model.MealRecord, 0)
	for rows.Next() {
		var r model.MealRecord
		var loggedAtRaw string
		if err := rows.Scan(&r.ID, &r.Name, &r.Calories, &r.ProteinG, &r.CarbsG, &r.FatG, &r.MealType, &r.Image, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("scan meal record: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for record %s: %w", r.ID, err)
		}
		r.LoggedAt = loggedAt
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal records: %w", err)
	}
	return records, nil
}

// ListExerciseRecords returns the day's activity records, most recent first.
func ListExerciseRecords(db *sql.DB, date time.Time) ([]model.ExerciseRecord, error) {
	start, end := dayBounds(date)
	rows, err := db.Query(`
SELECT id, name, calories, duration_min, record_type, image, logged_at
FROM log_records
WHERE kind = 'exercise' AND logged_at >= ? AND logged_at < ?
ORDER BY logged_at DESC, id DESC
`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list exercise records: %w", err)
	}
	defer rows.Close()

	records := make([]model.ExerciseRecord, 0)
	for rows.Next() {
		var r model.ExerciseRecord
		var loggedAtRaw string
		if err := rows.Scan(&r.ID, &r.Name, &r.CaloriesBurned, &r.DurationMin, &r.Category, &r.Image, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("scan exercise record: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for record %s: %w", r.ID, err)
		}
		r.LoggedAt = loggedAt
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise records: %w", err)
	}
	return records, nil
}
