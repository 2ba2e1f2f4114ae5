package service

import (
	"fmt"
	"strings"
	"time"
)

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func beginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func dayBounds(date time.Time) (string, string) {
	start := beginningOfDay(date)
	return start.Format(time.RFC3339), start.Add(24 * time.Hour).Format(time.RFC3339)
}
