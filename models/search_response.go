package models

import "af-server/models/activity"

// SearchResponse echoes the resolved query alongside the formatted
// results.
type SearchResponse struct {
	Location    string                       `json:"location"`
	Coordinates Coordinates                  `json:"coordinates"`
	Datetime    string                       `json:"datetime"`
	Results     []activity.FormattedActivity `json:"results"`
	ResultCount int                          `json:"result_count"`
}
