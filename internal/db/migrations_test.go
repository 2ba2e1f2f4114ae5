package db_test

import (
	"path/filepath"
	"testing"

	"github.com/alexvk/mealtrack/internal/db"
)

func TestApplyMigrationsIdempotentAndSeedsDefaults(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "mealtrack.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 4 {
		t.Fatalf("expected 4 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"log_records", "daily_totals", "goals", "custom_foods", "custom_exercises", "weight_log", "profile", "app_config"} {
		var count int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check table %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	var goalCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM goals`).Scan(&goalCount); err != nil {
		t.Fatalf("count seeded goals: %v", err)
	}
	if goalCount != 1 {
		t.Fatalf("expected one seeded goal, got %d", goalCount)
	}

	var seedCalories float64
	if err := sqldb.QueryRow(`SELECT calories FROM goals`).Scan(&seedCalories); err != nil {
		t.Fatalf("read seeded goal: %v", err)
	}
	if seedCalories != 2200 {
		t.Fatalf("expected 2200 kcal default target, got %v", seedCalories)
	}
}
