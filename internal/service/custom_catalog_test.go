package service_test

import (
	"strings"
	"testing"

	"github.com/alexvk/mealtrack/internal/catalog"
	"github.com/alexvk/mealtrack/internal/service"
)

func TestCreateCustomFoodAppliesDefaults(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	item, err := service.CreateCustomFood(db, service.CustomFoodInput{Name: "  Protein Bar  "})
	if err != nil {
		t.Fatalf("create custom food: %v", err)
	}
	if item.Name != "Protein Bar" {
		t.Fatalf("expected trimmed name, got %q", item.Name)
	}
	if item.Unit != "1 serving" || item.GramsPerUnit != 100 {
		t.Fatalf("expected serving defaults, got %q / %v", item.Unit, item.GramsPerUnit)
	}
	if !strings.HasPrefix(item.ID, "custom-") {
		t.Fatalf("expected custom- id prefix, got %q", item.ID)
	}
	if !item.Custom {
		t.Fatal("expected custom flag set")
	}
}

func TestCreateCustomFoodRequiresName(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.CreateCustomFood(db, service.CustomFoodInput{Name: "   "}); err == nil {
		t.Fatal("expected blank name to be rejected")
	}
	if _, err := service.CreateCustomFood(db, service.CustomFoodInput{Name: "Bad", Calories: -10}); err == nil {
		t.Fatal("expected negative calories to be rejected")
	}
}

func TestCreateCustomExerciseDefaults(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	item, err := service.CreateCustomExercise(db, service.CustomExerciseInput{Name: "Rock Climbing"})
	if err != nil {
		t.Fatalf("create custom exercise: %v", err)
	}
	if item.CaloriesPerMin != 5 {
		t.Fatalf("expected default 5 kcal/min, got %v", item.CaloriesPerMin)
	}
	if item.Category != catalog.CategoryCardio {
		t.Fatalf("expected default Cardio category, got %q", item.Category)
	}

	if _, err := service.CreateCustomExercise(db, service.CustomExerciseInput{
		Name:     "Handstand",
		Category: "Acrobatics",
	}); err == nil {
		t.Fatal("expected unknown category to be rejected")
	}
}

func TestListFoodsIncludesCustomAfterBuiltIns(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.CreateCustomFood(db, service.CustomFoodInput{Name: "Protein Bar", Calories: 210}); err != nil {
		t.Fatalf("create custom food: %v", err)
	}

	items, err := service.ListFoods(db)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	builtIns := len(catalog.Foods())
	if len(items) != builtIns+1 {
		t.Fatalf("expected %d items, got %d", builtIns+1, len(items))
	}
	last := items[len(items)-1]
	if last.Name != "Protein Bar" || !last.Custom {
		t.Fatalf("expected custom item last, got %+v", last)
	}
}

func TestFindFoodByIDAndName(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	custom, err := service.CreateCustomFood(db, service.CustomFoodInput{Name: "Protein Bar", Calories: 210})
	if err != nil {
		t.Fatalf("create custom food: %v", err)
	}

	byName, err := service.FindFood(db, "chicken breast")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if byName.Calories != 165 {
		t.Fatalf("unexpected item %+v", byName)
	}

	byID, err := service.FindFood(db, custom.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Name != "Protein Bar" {
		t.Fatalf("unexpected item %+v", byID)
	}

	if _, err := service.FindFood(db, "unobtainium"); err == nil {
		t.Fatal("expected unknown food lookup to fail")
	}
}

func TestFindExerciseByName(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	item, err := service.FindExercise(db, "yoga")
	if err != nil {
		t.Fatalf("find exercise: %v", err)
	}
	if item.Name != "Yoga" {
		t.Fatalf("unexpected item %+v", item)
	}

	if _, err := service.FindExercise(db, "underwater basket weaving"); err == nil {
		t.Fatal("expected unknown exercise lookup to fail")
	}
}
