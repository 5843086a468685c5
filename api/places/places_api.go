// Package places provides the activity source abstraction: a mock
// generating fixture records near the query point, and a client for the
// Google Places Text Search API.
package places

import (
	"af-server/models"
	"af-server/models/activity"
)

// PlacesAPI defines the interface for fetching candidate activities near
// a coordinate pair. The time hint is free text ("evening", an ISO
// datetime) folded into the upstream query; the mock ignores it.
type PlacesAPI interface {
	FindNearby(coords models.Coordinates, timeHint string) ([]activity.Activity, error)
	SetAPIKey(apiKey string)
}
