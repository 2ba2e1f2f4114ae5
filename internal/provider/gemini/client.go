package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

// Defaults substituted for fields the model omits. The drafts are untrusted
// best-effort guesses, never authoritative data.
const (
	defaultUnitName       = "1 serving"
	defaultGramsPerUnit   = 100.0
	defaultCaloriesPerMin = 5.0
)

var log = logrus.StandardLogger()

// FoodDraft is the model's guess at a food's per-unit nutrition, used to
// pre-fill the custom food form.
type FoodDraft struct {
	Name         string
	UnitName     string
	GramsPerUnit float64
	Calories     float64
	ProteinG     float64
	CarbsG       float64
	FatG         float64
}

// ExerciseDraft is the model's guess at an exercise burn rate.
type ExerciseDraft struct {
	Name           string
	CaloriesPerMin float64
}

type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// AutoFillFood asks the model to analyze a free-text food description and
// returns a draft for the custom food form. An empty name in the reply
// rejects the whole draft.
func (c *Client) AutoFillFood(ctx context.Context, description string) (FoodDraft, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return FoodDraft{}, fmt.Errorf("food description is required")
	}

	prompt := fmt.Sprintf(`Analyze this food description: %q.
Identify the likely food name, standard unit name (e.g. '1 bowl', '1 slice'), estimated weight in grams for that unit, and nutritional info for ONE unit.
Return raw JSON only.
Structure: {
  "name": string,
  "unit_name": string,
  "weight_per_unit_g": number,
  "calories": number,
  "protein": number,
  "carbs": number,
  "fat": number
}`, description)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return FoodDraft{}, err
	}

	parsed := gjson.Parse(text)
	draft := FoodDraft{
		Name:         strings.TrimSpace(parsed.Get("name").String()),
		UnitName:     strings.TrimSpace(parsed.Get("unit_name").String()),
		GramsPerUnit: parsed.Get("weight_per_unit_g").Float(),
		Calories:     parsed.Get("calories").Float(),
		ProteinG:     parsed.Get("protein").Float(),
		CarbsG:       parsed.Get("carbs").Float(),
		FatG:         parsed.Get("fat").Float(),
	}
	if draft.Name == "" {
		return FoodDraft{}, fmt.Errorf("model reply has no food name")
	}
	if draft.UnitName == "" {
		draft.UnitName = defaultUnitName
	}
	if draft.GramsPerUnit <= 0 {
		draft.GramsPerUnit = defaultGramsPerUnit
	}
	if draft.Calories < 0 {
		draft.Calories = 0
	}
	if draft.ProteinG < 0 {
		draft.ProteinG = 0
	}
	if draft.CarbsG < 0 {
		draft.CarbsG = 0
	}
	if draft.FatG < 0 {
		draft.FatG = 0
	}
	return draft, nil
}

// AutoFillExercise asks the model to estimate an exercise's burn rate.
func (c *Client) AutoFillExercise(ctx context.Context, description string) (ExerciseDraft, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return ExerciseDraft{}, fmt.Errorf("exercise description is required")
	}

	prompt := fmt.Sprintf(`Analyze this exercise: %q. Identify the exercise name and estimated calories burned per minute. Return raw JSON. Structure: { "name": string, "calories_per_min": number }`, description)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return ExerciseDraft{}, err
	}

	parsed := gjson.Parse(text)
	draft := ExerciseDraft{
		Name:           strings.TrimSpace(parsed.Get("name").String()),
		CaloriesPerMin: parsed.Get("calories_per_min").Float(),
	}
	if draft.Name == "" {
		return ExerciseDraft{}, fmt.Errorf("model reply has no exercise name")
	}
	if draft.CaloriesPerMin <= 0 {
		draft.CaloriesPerMin = defaultCaloriesPerMin
	}
	return draft, nil
}

// generate runs one generateContent call and returns the first candidate's
// text part.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("missing Gemini API key (set GEMINI_API_KEY)")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(c.Model)
	if model == "" {
		model = DefaultModel
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = 30 * time.Second
	if c.HTTPClient != nil {
		retryClient.HTTPClient = c.HTTPClient
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal Gemini payload: %w", err)
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, model, c.APIKey)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithField("model", model).Debug("calling Gemini generateContent")
	resp, err := retryClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute Gemini request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read Gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Warn("Gemini request failed")
		return "", fmt.Errorf("Gemini request failed with status %d", resp.StatusCode)
	}

	text := gjson.GetBytes(respBody, "candidates.0.content.parts.0.text").String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("Gemini response has no candidate text")
	}
	return text, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}
