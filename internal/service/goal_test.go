package service_test

import (
	"testing"

	"github.com/alexvk/mealtrack/internal/service"
)

func TestSetGoalVersionsByEffectiveDate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetGoal(db, service.SetGoalInput{
		Calories: 2000, ProteinG: 140, CarbsG: 220, FatG: 60,
		EffectiveDate: "2026-03-01",
	}); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if err := service.SetGoal(db, service.SetGoalInput{
		Calories: 1800, ProteinG: 130, CarbsG: 200, FatG: 55,
		EffectiveDate: "2026-03-15",
	}); err != nil {
		t.Fatalf("set second goal: %v", err)
	}

	// A date between the two versions resolves to the earlier one.
	goal, err := service.CurrentGoal(db, "2026-03-10")
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if goal == nil || goal.Calories != 2000 {
		t.Fatalf("expected 2000 kcal goal on 2026-03-10, got %+v", goal)
	}

	goal, err = service.CurrentGoal(db, "2026-03-20")
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if goal == nil || goal.Calories != 1800 {
		t.Fatalf("expected 1800 kcal goal on 2026-03-20, got %+v", goal)
	}
}

func TestSetGoalReplacesSameDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for _, calories := range []float64{2100, 2300} {
		if err := service.SetGoal(db, service.SetGoalInput{
			Calories: calories, ProteinG: 150, CarbsG: 250, FatG: 70,
			EffectiveDate: "2026-04-01",
		}); err != nil {
			t.Fatalf("set goal: %v", err)
		}
	}

	goal, err := service.CurrentGoal(db, "2026-04-01")
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if goal.Calories != 2300 {
		t.Fatalf("expected same-day goal to be replaced, got %v kcal", goal.Calories)
	}
}

func TestSeededGoalIsPresent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	goal, err := service.CurrentGoal(db, "")
	if err != nil {
		t.Fatalf("current goal: %v", err)
	}
	if goal == nil {
		t.Fatal("expected seeded default goal")
	}
	if goal.Calories != 2200 || goal.ProteinG != 150 || goal.CarbsG != 250 || goal.FatG != 70 {
		t.Fatalf("unexpected seeded goal %+v", goal)
	}
}

func TestSetGoalRejectsBadInput(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetGoal(db, service.SetGoalInput{Calories: -1}); err == nil {
		t.Fatal("expected negative calories to be rejected")
	}
	if err := service.SetGoal(db, service.SetGoalInput{Calories: 2000, EffectiveDate: "March 1"}); err == nil {
		t.Fatal("expected malformed effective date to be rejected")
	}
}

func TestGoalHistoryNewestFirst(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for _, date := range []string{"2026-01-01", "2026-02-01"} {
		if err := service.SetGoal(db, service.SetGoalInput{
			Calories: 2000, ProteinG: 150, CarbsG: 250, FatG: 70,
			EffectiveDate: date,
		}); err != nil {
			t.Fatalf("set goal: %v", err)
		}
	}

	goals, err := service.GoalHistory(db)
	if err != nil {
		t.Fatalf("goal history: %v", err)
	}
	if len(goals) != 3 { // seed + two explicit versions
		t.Fatalf("expected 3 goals, got %d", len(goals))
	}
	if goals[0].EffectiveDate != "2026-02-01" {
		t.Fatalf("expected newest first, got %s", goals[0].EffectiveDate)
	}
}
