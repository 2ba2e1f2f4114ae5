package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexvk/mealtrack/internal/model"
)

// MacroStatus pairs a running total with its target.
type MacroStatus struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

func (m MacroStatus) Remaining() float64 {
	return m.Target - m.Current
}

type DayStatus struct {
	Date     string      `json:"date"`
	Calories MacroStatus `json:"calories"`
	Protein  MacroStatus `json:"protein_g"`
	Carbs    MacroStatus `json:"carbs_g"`
	Fat      MacroStatus `json:"fat_g"`
	Burned   float64     `json:"burned"`
	Net      float64     `json:"net_calories"`
}

// DailyTotalsFor reads the day's running totals; a day with no records yet
// is all zeroes.
func DailyTotalsFor(db *sql.DB, date time.Time) (model.DailyTotals, error) {
	totals := model.DailyTotals{Date: dayKey(date)}
	err := db.QueryRow(`
SELECT calories, protein_g, carbs_g, fat_g, burned FROM daily_totals WHERE date = ?
`, totals.Date).Scan(&totals.Calories, &totals.ProteinG, &totals.CarbsG, &totals.FatG, &totals.Burned)
	if err == sql.ErrNoRows {
		return totals, nil
	}
	if err != nil {
		return totals, fmt.Errorf("daily totals for %s: %w", totals.Date, err)
	}
	return totals, nil
}

// StatusForDay combines the day's totals with the goal in effect on it.
func StatusForDay(db *sql.DB, date time.Time) (*DayStatus, error) {
	totals, err := DailyTotalsFor(db, date)
	if err != nil {
		return nil, err
	}
	goal, err := CurrentGoal(db, totals.Date)
	if err != nil {
		return nil, err
	}

	status := &DayStatus{
		Date:     totals.Date,
		Calories: MacroStatus{Current: totals.Calories},
		Protein:  MacroStatus{Current: totals.ProteinG},
		Carbs:    MacroStatus{Current: totals.CarbsG},
		Fat:      MacroStatus{Current: totals.FatG},
		Burned:   totals.Burned,
		Net:      totals.Calories - totals.Burned,
	}
	if goal != nil {
		status.Calories.Target = goal.Calories
		status.Protein.Target = goal.ProteinG
		status.Carbs.Target = goal.CarbsG
		status.Fat.Target = goal.FatG
	}
	return status, nil
}
