package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/alexvk/mealtrack/internal/cart"
	"github.com/alexvk/mealtrack/internal/catalog"
	"github.com/alexvk/mealtrack/internal/model"
	"github.com/alexvk/mealtrack/internal/service"
)

func catalogFood(t *testing.T, name string) model.CatalogFood {
	t.Helper()
	for _, f := range catalog.Foods() {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("food %q not in built-in catalog", name)
	return model.CatalogFood{}
}

func catalogExercise(t *testing.T, name string) model.CatalogExercise {
	t.Helper()
	for _, e := range catalog.Exercises() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("exercise %q not in built-in catalog", name)
	return model.CatalogExercise{}
}

func TestConfirmMealCartAppliesBatchToDailyTotals(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := time.Date(2026, 3, 10, 12, 30, 0, 0, time.Local)

	c := cart.NewFoodCart()
	c.Add(catalogFood(t, "Boiled Egg"))
	c.Add(catalogFood(t, "Chicken Breast"))

	records, err := service.ConfirmMealCart(db, c, service.MealLunch, now)
	if err != nil {
		t.Fatalf("confirm meal cart: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		if r.ID == "" || r.MealType != service.MealLunch {
			t.Fatalf("bad record %+v", r)
		}
	}

	totals, err := service.DailyTotalsFor(db, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if totals.Calories != 243 {
		t.Fatalf("expected 243 kcal applied in one batch, got %v", totals.Calories)
	}
	if totals.ProteinG != 37 {
		t.Fatalf("expected 37g protein, got %v", totals.ProteinG)
	}
}

func TestConfirmMealCartIsIncrementalAcrossBatches(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	first := cart.NewFoodCart()
	first.Add(catalogFood(t, "Oatmeal"))
	if _, err := service.ConfirmMealCart(db, first, service.MealBreakfast, now); err != nil {
		t.Fatalf("confirm first cart: %v", err)
	}

	second := cart.NewFoodCart()
	second.Add(catalogFood(t, "Banana"))
	if _, err := service.ConfirmMealCart(db, second, service.MealSnack, now.Add(2*time.Hour)); err != nil {
		t.Fatalf("confirm second cart: %v", err)
	}

	totals, err := service.DailyTotalsFor(db, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if totals.Calories != 255 {
		t.Fatalf("expected 150+105 kcal across batches, got %v", totals.Calories)
	}
}

func TestConfirmEmptyCartFails(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.ConfirmMealCart(db, cart.NewFoodCart(), service.MealLunch, time.Now()); err == nil {
		t.Fatal("expected empty meal cart to be rejected")
	}
	if _, err := service.ConfirmExerciseCart(db, cart.NewExerciseCart(), time.Now()); err == nil {
		t.Fatal("expected empty exercise cart to be rejected")
	}
}

func TestConfirmExerciseCartRecordsBurn(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := time.Date(2026, 3, 10, 18, 15, 0, 0, time.Local)

	c := cart.NewExerciseCart()
	c.Add(catalogExercise(t, "Running (Moderate)"))
	c.Add(catalogExercise(t, "Running (Moderate)")) // 45 min total

	records, err := service.ConfirmExerciseCart(db, c, now)
	if err != nil {
		t.Fatalf("confirm exercise cart: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected merged single record, got %d", len(records))
	}
	if records[0].CaloriesBurned != 495 || records[0].DurationMin != 45 {
		t.Fatalf("expected 495 kcal over 45 min, got %+v", records[0])
	}

	totals, err := service.DailyTotalsFor(db, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if totals.Burned != 495 {
		t.Fatalf("expected 495 kcal burned, got %v", totals.Burned)
	}
}

func TestConfirmGramModeLineMatchesUnitTotal(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	c := cart.NewFoodCart()
	egg := catalogFood(t, "Boiled Egg")
	c.Add(egg)
	c.ToggleMode(egg.ID) // 1 unit -> 50 g

	records, err := service.ConfirmMealCart(db, c, service.MealBreakfast, time.Now())
	if err != nil {
		t.Fatalf("confirm meal cart: %v", err)
	}
	if math.Abs(records[0].Calories-78) > 1e-9 {
		t.Fatalf("expected 78 kcal from 50g of egg, got %v", records[0].Calories)
	}
}

func TestMealTypeForHour(t *testing.T) {
	t.Parallel()
	cases := map[int]string{
		7:  service.MealBreakfast,
		12: service.MealLunch,
		17: service.MealDinner,
		21: service.MealSnack,
	}
	for hour, want := range cases {
		if got := service.MealTypeForHour(hour); got != want {
			t.Errorf("hour %d: expected %s, got %s", hour, want, got)
		}
	}
}
