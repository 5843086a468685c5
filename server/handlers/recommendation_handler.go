package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"af-server/api/gemini"
	"af-server/models"
	"af-server/service"
)

// RecommendationHandler serves the free-text entry point: extract
// structured preferences with Gemini, then run the same pipeline the
// structured search uses.
type RecommendationHandler struct {
	extractor       gemini.PreferenceExtractor
	activityService *service.ActivityService
}

func NewRecommendationHandler(
	extractor gemini.PreferenceExtractor,
	activityService *service.ActivityService) *RecommendationHandler {

	return &RecommendationHandler{
		extractor:       extractor,
		activityService: activityService,
	}
}

// Recommend handles POST /api/recommendations. Model output that fails
// strict parsing is rejected wholesale; no partially validated
// preferences reach the pipeline.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		writeError(w, http.StatusBadRequest, "user_input is required")
		return
	}

	prefs, err := h.extractor.ExtractPreferences(r.Context(), req.UserInput)
	if err != nil {
		log.Printf("[RecommendationHandler] Preference extraction failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not extract preferences from input")
		return
	}

	response, err := h.activityService.Recommend(*prefs)
	if err != nil {
		log.Printf("[RecommendationHandler] Recommendation failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}
