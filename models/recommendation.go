package models

import "af-server/models/activity"

// RecommendationRequest is the POST /api/recommendations body.
type RecommendationRequest struct {
	UserInput string `json:"user_input"`
}

// RecommendationResponse pairs the extracted preferences with the
// recommendations produced from them.
type RecommendationResponse struct {
	Preferences     Preferences                  `json:"preferences"`
	Coordinates     Coordinates                  `json:"coordinates"`
	Recommendations []activity.FormattedActivity `json:"recommendations"`
	ResultCount     int                          `json:"result_count"`
}
