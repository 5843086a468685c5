package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"af-server/config"
	"af-server/models"
)

const extractionPromptFormat = `You are a helpful assistant that extracts structured user preferences for activity recommendations.

Extract the following from the user input:
- location (city or area)
- category (one of: %s; empty if none fits)
- date (specific date or day of week)
- time_of_day (morning, afternoon, evening, night)

Return ONLY a valid JSON object with the keys "location", "category", "date" and "time_of_day", using empty string values for anything not mentioned.

User input:
"""%s"""`

// GeminiExtractorClient calls the Gemini API and strictly parses its
// output into Preferences.
type GeminiExtractorClient struct {
	client *genai.Client
}

// NewGeminiExtractorClient constructs the client once at startup; the
// handle is injected wherever extraction is needed.
func NewGeminiExtractorClient(ctx context.Context, apiKey string) (*GeminiExtractorClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiExtractorClient{client: client}, nil
}

// ExtractPreferences prompts the model and parses the response. A
// response that is not valid preference JSON is rejected as an error.
func (c *GeminiExtractorClient) ExtractPreferences(ctx context.Context, userInput string) (*models.Preferences, error) {
	prompt := fmt.Sprintf(extractionPromptFormat, strings.Join(models.Categories, ", "), userInput)

	response, err := c.client.Models.GenerateContent(ctx, config.GEMINI_MODEL,
		genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.2)},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text := responseText(response)
	if text == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}

	return ParsePreferences(text)
}

// responseText concatenates the text parts of the first candidate.
func responseText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// ParsePreferences strips the markdown code fences the model sometimes
// wraps around its JSON, then requires a clean unmarshal. Anything else
// is rejected.
func ParsePreferences(raw string) (*models.Preferences, error) {
	cleaned := stripCodeFences(raw)
	var prefs models.Preferences
	if err := json.Unmarshal([]byte(cleaned), &prefs); err != nil {
		return nil, fmt.Errorf("model output is not valid preference JSON: %w", err)
	}
	return &prefs, nil
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
