package mealtrack

import (
	"database/sql"
	"os"
	"strings"

	"github.com/alexvk/mealtrack/internal/provider/gemini"
	"github.com/alexvk/mealtrack/internal/service"
)

// newGeminiClient builds a client from GEMINI_API_KEY and the configured
// model name. A --model flag value takes precedence over the stored config.
func newGeminiClient(sqldb *sql.DB, modelFlag string) (*gemini.Client, error) {
	model := strings.TrimSpace(modelFlag)
	if model == "" {
		stored, ok, err := service.GetConfig(sqldb, service.ConfigGeminiModel)
		if err != nil {
			return nil, err
		}
		if ok {
			model = stored
		}
	}
	return &gemini.Client{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  model,
	}, nil
}
