// Package gemini wraps the Gemini generative API for turning free-text
// requests into structured search preferences.
package gemini

import (
	"context"

	"af-server/models"
)

// PreferenceExtractor extracts structured preferences from natural
// language input. Implementations must return either a fully parsed
// Preferences value or an error; unvalidated model output never crosses
// this boundary.
type PreferenceExtractor interface {
	ExtractPreferences(ctx context.Context, userInput string) (*models.Preferences, error)
}
