package service_test

import (
	"testing"
	"time"

	"github.com/alexvk/mealtrack/internal/cart"
	"github.com/alexvk/mealtrack/internal/service"
)

func TestStatusForDayUsesSeededTargets(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	day := time.Date(2026, 3, 12, 12, 0, 0, 0, time.Local)

	c := cart.NewFoodCart()
	c.Add(catalogFood(t, "Chicken Breast"))
	if _, err := service.ConfirmMealCart(db, c, service.MealLunch, day); err != nil {
		t.Fatalf("confirm cart: %v", err)
	}
	w := cart.NewExerciseCart()
	w.Add(catalogExercise(t, "Walking (Brisk)"))
	if _, err := service.ConfirmExerciseCart(db, w, day); err != nil {
		t.Fatalf("confirm workout: %v", err)
	}

	status, err := service.StatusForDay(db, day)
	if err != nil {
		t.Fatalf("status for day: %v", err)
	}
	if status.Calories.Current != 165 || status.Calories.Target != 2200 {
		t.Fatalf("unexpected calories status %+v", status.Calories)
	}
	if status.Burned != 120 {
		t.Fatalf("expected 120 kcal burned, got %v", status.Burned)
	}
	if status.Net != 45 {
		t.Fatalf("expected net 45 kcal, got %v", status.Net)
	}
	if status.Calories.Remaining() != 2035 {
		t.Fatalf("expected 2035 kcal remaining, got %v", status.Calories.Remaining())
	}
}

func TestStatusForEmptyDayIsZero(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	status, err := service.StatusForDay(db, time.Now())
	if err != nil {
		t.Fatalf("status for day: %v", err)
	}
	if status.Calories.Current != 0 || status.Burned != 0 {
		t.Fatalf("expected zero totals, got %+v", status)
	}
	if status.Protein.Target != 150 {
		t.Fatalf("expected seeded protein target 150, got %v", status.Protein.Target)
	}
}
