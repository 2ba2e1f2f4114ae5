package service

import (
	"database/sql"
	"fmt"
	"math"
	"time"
)

type DayPoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Burned   float64 `json:"burned"`
	Net      float64 `json:"net_calories"`
}

// MacroSplit is the share of intake energy contributed by each macro,
// using 4 kcal/g for protein and carbs and 9 kcal/g for fat.
type MacroSplit struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

type AnalyticsReport struct {
	FromDate              string     `json:"from_date"`
	ToDate                string     `json:"to_date"`
	Days                  []DayPoint `json:"days"`
	DaysWithRecords       int        `json:"days_with_records"`
	TotalCalories         float64    `json:"total_calories"`
	TotalProteinG         float64    `json:"total_protein_g"`
	TotalCarbsG           float64    `json:"total_carbs_g"`
	TotalFatG             float64    `json:"total_fat_g"`
	TotalBurned           float64    `json:"total_burned"`
	AverageCaloriesPerDay float64    `json:"avg_calories_per_day"`
	AverageBurnedPerDay   float64    `json:"avg_burned_per_day"`
	HighestDay            *DayPoint  `json:"highest_day,omitempty"`
	LowestDay             *DayPoint  `json:"lowest_day,omitempty"`
	Split                 MacroSplit `json:"macro_split"`
}

// AnalyticsRange summarizes the daily totals between from and to inclusive.
func AnalyticsRange(db *sql.DB, from, to time.Time) (*AnalyticsReport, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}
	report := &AnalyticsReport{
		FromDate: dayKey(from),
		ToDate:   dayKey(to),
	}

	rows, err := db.Query(`
SELECT date, calories, protein_g, carbs_g, fat_g, burned
FROM daily_totals
WHERE date >= ? AND date <= ?
ORDER BY date ASC
`, report.FromDate, report.ToDate)
	if err != nil {
		return nil, fmt.Errorf("load daily totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d DayPoint
		if err := rows.Scan(&d.Date, &d.Calories, &d.ProteinG, &d.CarbsG, &d.FatG, &d.Burned); err != nil {
			return nil, fmt.Errorf("scan daily totals: %w", err)
		}
		d.Net = d.Calories - d.Burned
		report.Days = append(report.Days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily totals: %w", err)
	}

	report.DaysWithRecords = len(report.Days)
	for i := range report.Days {
		d := report.Days[i]
		report.TotalCalories += d.Calories
		report.TotalProteinG += d.ProteinG
		report.TotalCarbsG += d.CarbsG
		report.TotalFatG += d.FatG
		report.TotalBurned += d.Burned
	}
	if report.DaysWithRecords > 0 {
		div := float64(report.DaysWithRecords)
		report.AverageCaloriesPerDay = report.TotalCalories / div
		report.AverageBurnedPerDay = report.TotalBurned / div
		report.HighestDay, report.LowestDay = extremeDays(report.Days)
	}
	report.Split = macroSplit(report.TotalProteinG, report.TotalCarbsG, report.TotalFatG)

	return report, nil
}

func extremeDays(days []DayPoint) (*DayPoint, *DayPoint) {
	highest := days[0]
	lowest := days[0]
	for _, d := range days[1:] {
		if d.Calories > highest.Calories {
			highest = d
		}
		if d.Calories < lowest.Calories {
			lowest = d
		}
	}
	return &highest, &lowest
}

func macroSplit(proteinG, carbsG, fatG float64) MacroSplit {
	proteinKcal := proteinG * 4
	carbsKcal := carbsG * 4
	fatKcal := fatG * 9
	total := proteinKcal + carbsKcal + fatKcal
	if total <= 0 {
		return MacroSplit{}
	}
	pct := func(v float64) float64 {
		return math.Round(v / total * 1000) / 10
	}
	return MacroSplit{
		ProteinPct: pct(proteinKcal),
		CarbsPct:   pct(carbsKcal),
		FatPct:     pct(fatKcal),
	}
}
