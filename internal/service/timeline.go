package service

import (
	"database/sql"
	"sort"
	"time"
)

// TimelineItem is one row of the merged meal/exercise day view.
type TimelineItem struct {
	ID          string
	Kind        string // "meal" or "exercise"
	Name        string
	Calories    float64 // consumed for meals, burned for exercises
	DurationMin float64 // exercises only
	Type        string  // meal type or exercise category
	Time        string  // HH:MM label
	LoggedAt    time.Time
}

// TimelineForDay merges the day's meals and activities, most recent first.
// Records in the same minute keep a stable order via their sortable ids.
func TimelineForDay(db *sql.DB, date time.Time) ([]TimelineItem, error) {
	meals, err := ListMealRecords(db, date)
	if err != nil {
		return nil, err
	}
	exercises, err := ListExerciseRecords(db, date)
	if err != nil {
		return nil, err
	}

	items := make([]TimelineItem, 0, len(meals)+len(exercises))
	for _, m := range meals {
		items = append(items, TimelineItem{
			ID:       m.ID,
			Kind:     "meal",
			Name:     m.Name,
			Calories: m.Calories,
			Type:     m.MealType,
			Time:     m.LoggedAt.Format("15:04"),
			LoggedAt: m.LoggedAt,
		})
	}
	for _, e := range exercises {
		items = append(items, TimelineItem{
			ID:          e.ID,
			Kind:        "exercise",
			Name:        e.Name,
			Calories:    e.CaloriesBurned,
			DurationMin: e.DurationMin,
			Type:        e.Category,
			Time:        e.LoggedAt.Format("15:04"),
			LoggedAt:    e.LoggedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Time != items[j].Time {
			return items[i].Time > items[j].Time
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}
