package gemini

import (
	"context"

	"af-server/models"
)

// GeminiExtractorClientMock returns canned preferences without calling
// the model; used in dev environments and handler tests.
type GeminiExtractorClientMock struct {
	Preferences *models.Preferences
	Err         error
}

// NewGeminiExtractorClientMock creates a mock pre-loaded with plausible
// preferences.
func NewGeminiExtractorClientMock() *GeminiExtractorClientMock {
	return &GeminiExtractorClientMock{
		Preferences: &models.Preferences{
			Location:  "san francisco",
			Category:  "entertainment",
			TimeOfDay: "night",
		},
	}
}

func (c *GeminiExtractorClientMock) ExtractPreferences(ctx context.Context, userInput string) (*models.Preferences, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Preferences, nil
}
