package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"af-server/api/gemini"
	"af-server/api/places"
	redisdao "af-server/dao/redis"
	"af-server/db"
	"af-server/models"
	"af-server/service"
)

func newRecommendationHandler(extractor gemini.PreferenceExtractor) *RecommendationHandler {
	dao := redisdao.NewRedisActivityDAO(db.NewMockRedisClient(context.Background()))
	svc := service.NewActivityService(service.NewLocationResolver(), places.NewPlacesApiClientMock(), dao)
	return NewRecommendationHandler(extractor, svc)
}

func TestRecommendationHandler_Recommend(t *testing.T) {
	extractor := &gemini.GeminiExtractorClientMock{
		Preferences: &models.Preferences{Location: "new york", Category: "food", TimeOfDay: "evening"},
	}
	handler := newRecommendationHandler(extractor)

	body := `{"user_input": "somewhere nice to eat in new york tonight"}`
	rec := httptest.NewRecorder()
	handler.Recommend(rec, httptest.NewRequest("POST", "/api/recommendations", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "new york", response.Preferences.Location)
	assert.Equal(t, "food", response.Preferences.Category)
	require.NotEmpty(t, response.Recommendations)
	for _, r := range response.Recommendations {
		assert.Equal(t, "food", r.Category)
	}
}

func TestRecommendationHandler_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"Malformed JSON", `not-json`, "Request must be JSON"},
		{"Missing user input", `{}`, "user_input is required"},
		{"Blank user input", `{"user_input": "   "}`, "user_input is required"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := newRecommendationHandler(gemini.NewGeminiExtractorClientMock())

			rec := httptest.NewRecorder()
			handler.Recommend(rec, httptest.NewRequest("POST", "/api/recommendations", strings.NewReader(test.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, test.wantError, body["error"])
		})
	}
}

func TestRecommendationHandler_ExtractionFailure(t *testing.T) {
	extractor := &gemini.GeminiExtractorClientMock{Err: fmt.Errorf("model output is not valid preference JSON")}
	handler := newRecommendationHandler(extractor)

	body := `{"user_input": "gibberish request"}`
	rec := httptest.NewRecorder()
	handler.Recommend(rec, httptest.NewRequest("POST", "/api/recommendations", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Could not extract preferences from input", response["error"])
}
