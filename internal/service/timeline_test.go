package service_test

import (
	"testing"
	"time"

	"github.com/alexvk/mealtrack/internal/cart"
	"github.com/alexvk/mealtrack/internal/service"
)

func TestTimelineMergesMostRecentFirst(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)

	breakfast := cart.NewFoodCart()
	breakfast.Add(catalogFood(t, "Oatmeal"))
	if _, err := service.ConfirmMealCart(db, breakfast, service.MealBreakfast, day.Add(8*time.Hour)); err != nil {
		t.Fatalf("confirm breakfast: %v", err)
	}

	workout := cart.NewExerciseCart()
	workout.Add(catalogExercise(t, "Yoga"))
	if _, err := service.ConfirmExerciseCart(db, workout, day.Add(12*time.Hour)); err != nil {
		t.Fatalf("confirm workout: %v", err)
	}

	lunch := cart.NewFoodCart()
	lunch.Add(catalogFood(t, "Caesar Salad"))
	if _, err := service.ConfirmMealCart(db, lunch, service.MealLunch, day.Add(13*time.Hour)); err != nil {
		t.Fatalf("confirm lunch: %v", err)
	}

	items, err := service.TimelineForDay(db, day)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 timeline items, got %d", len(items))
	}
	if items[0].Name != "Caesar Salad" || items[1].Name != "Yoga" || items[2].Name != "Oatmeal" {
		t.Fatalf("unexpected order: %s, %s, %s", items[0].Name, items[1].Name, items[2].Name)
	}
	if items[0].Time != "13:00" {
		t.Fatalf("expected minute-granularity label 13:00, got %s", items[0].Time)
	}
	if items[1].Kind != "exercise" || items[1].DurationMin != 30 {
		t.Fatalf("unexpected exercise item: %+v", items[1])
	}
}

func TestTimelineExcludesOtherDays(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	day := time.Date(2026, 3, 11, 9, 0, 0, 0, time.Local)

	c := cart.NewFoodCart()
	c.Add(catalogFood(t, "Apple"))
	if _, err := service.ConfirmMealCart(db, c, service.MealSnack, day); err != nil {
		t.Fatalf("confirm snack: %v", err)
	}

	items, err := service.TimelineForDay(db, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty timeline for next day, got %d items", len(items))
	}
}
