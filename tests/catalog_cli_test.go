package tests

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalogAndConfigFlow(t *testing.T) {
	binPath := buildMealtrackBinary(t)
	dbPath := filepath.Join(t.TempDir(), "mealtrack.db")
	initDB(t, binPath, dbPath)

	stdout, stderr, exit := runMealtrack(t, binPath, dbPath, "food", "search", "egg")
	if exit != 0 {
		t.Fatalf("food search failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Boiled Egg") || strings.Contains(stdout, "Banana") {
		t.Fatalf("expected only egg matches, got:\n%s", stdout)
	}

	stdout, stderr, exit = runMealtrack(t, binPath, dbPath,
		"exercise", "list", "--category", "Flexibility",
	)
	if exit != 0 {
		t.Fatalf("exercise list failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Yoga") || !strings.Contains(stdout, "Pilates") {
		t.Fatalf("expected flexibility exercises, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "Running (Moderate)") {
		t.Fatalf("expected cardio to be filtered out, got:\n%s", stdout)
	}

	stdout, stderr, exit = runMealtrack(t, binPath, dbPath,
		"exercise", "custom", "--name", "Rock Climbing", "--category", "Sports",
	)
	if exit != 0 {
		t.Fatalf("exercise custom failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Added custom exercise Rock Climbing (custom-ex-") {
		t.Fatalf("expected custom exercise id prefix, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "5.0 kcal/min") {
		t.Fatalf("expected default burn rate, got:\n%s", stdout)
	}

	_, stderr, exit = runMealtrack(t, binPath, dbPath,
		"exercise", "custom", "--name", "Handstand", "--category", "Acrobatics",
	)
	if exit == 0 {
		t.Fatalf("expected unknown category to be rejected")
	}
	if !strings.Contains(stderr, "invalid exercise category") {
		t.Fatalf("expected category error in stderr, got: %s", stderr)
	}

	_, stderr, exit = runMealtrack(t, binPath, dbPath,
		"profile", "set", "--name", "Sam Rivera", "--height-cm", "170",
	)
	if exit != 0 {
		t.Fatalf("profile set failed: exit=%d stderr=%s", exit, stderr)
	}
	stdout, stderr, exit = runMealtrack(t, binPath, dbPath, "profile", "show")
	if exit != 0 {
		t.Fatalf("profile show failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Name: Sam Rivera") || !strings.Contains(stdout, "Height: 170 cm") {
		t.Fatalf("expected updated profile, got:\n%s", stdout)
	}
	// Fields not passed keep their previous values.
	if !strings.Contains(stdout, "Age: 26") {
		t.Fatalf("expected untouched age, got:\n%s", stdout)
	}

	_, stderr, exit = runMealtrack(t, binPath, dbPath,
		"config", "set", "--gemini-model", "gemini-2.5-pro",
	)
	if exit != 0 {
		t.Fatalf("config set failed: exit=%d stderr=%s", exit, stderr)
	}
	stdout, stderr, exit = runMealtrack(t, binPath, dbPath, "config", "get", "gemini_model")
	if exit != 0 {
		t.Fatalf("config get failed: exit=%d stderr=%s", exit, stderr)
	}
	if strings.TrimSpace(stdout) != "gemini-2.5-pro" {
		t.Fatalf("expected stored model name, got: %s", stdout)
	}

	stdout, stderr, exit = runMealtrack(t, binPath, dbPath, "goal", "show")
	if exit != 0 {
		t.Fatalf("goal show failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Calories: 2200") {
		t.Fatalf("expected seeded default goal, got:\n%s", stdout)
	}
}
