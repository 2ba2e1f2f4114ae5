package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexvk/mealtrack/internal/model"
)

// defaultProfile mirrors the starter profile shipped with the app.
var defaultProfile = model.Profile{
	Name:          "Alex Johnson",
	Age:           26,
	HeightCm:      178,
	Gender:        "Male",
	ActivityLevel: "Moderate",
}

// GetProfile returns the stored profile, or the starter profile when none
// has been saved yet.
func GetProfile(db *sql.DB) (model.Profile, error) {
	var p model.Profile
	err := db.QueryRow(`
SELECT name, age, height_cm, gender, activity_level FROM profile WHERE id = 1
`).Scan(&p.Name, &p.Age, &p.HeightCm, &p.Gender, &p.ActivityLevel)
	if err == sql.ErrNoRows {
		return defaultProfile, nil
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

func SetProfile(db *sql.DB, p model.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must be >= 0")
	}
	if p.HeightCm < 0 {
		return fmt.Errorf("height must be >= 0")
	}
	_, err := db.Exec(`
INSERT INTO profile(id, name, age, height_cm, gender, activity_level)
VALUES(1, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  age=excluded.age,
  height_cm=excluded.height_cm,
  gender=excluded.gender,
  activity_level=excluded.activity_level,
  updated_at=CURRENT_TIMESTAMP
`, p.Name, p.Age, p.HeightCm, p.Gender, p.ActivityLevel)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
