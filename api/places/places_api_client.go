package places

import (
	"fmt"
	"net/url"
	"strconv"

	"af-server/api"
	"af-server/config"
	"af-server/models"
	"af-server/models/activity"
)

// PlacesApiClient calls the Google Places Text Search API through the
// shared HTTPClient.
type PlacesApiClient struct {
	*api.HTTPClient
	apiKey string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient.
func NewPlacesApiClient(httpClient *api.HTTPClient) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
	}
}

func (c *PlacesApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// FindNearby issues a text search biased to the given coordinates and
// maps the response into activity records. Network errors and non-OK
// statuses surface to the caller.
func (c *PlacesApiClient) FindNearby(coords models.Coordinates, timeHint string) ([]activity.Activity, error) {
	query := "things to do"
	if timeHint != "" {
		query += " in the " + timeHint
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("location", fmt.Sprintf("%f,%f", coords.Lat, coords.Lng))
	params.Set("radius", strconv.Itoa(int(config.CACHE_REFRESH_RADIUS_KM*1000)))
	params.Set("key", c.apiKey)

	var response models.TextSearchResponse
	if err := c.Request("GET", "/textsearch/json?"+params.Encode(), nil, nil, &response); err != nil {
		return nil, err
	}
	if response.Status != "OK" && response.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places text search returned status %s: %s", response.Status, response.ErrorMessage)
	}

	results := response.Results
	if len(results) > config.PLACES_MAX_RESULTS {
		results = results[:config.PLACES_MAX_RESULTS]
	}

	activities := make([]activity.Activity, 0, len(results))
	for _, place := range results {
		activities = append(activities, mapPlaceResult(place))
	}
	return activities, nil
}

// mapPlaceResult converts one Places result into the canonical record.
// Missing optional fields become zero values rather than errors.
func mapPlaceResult(place models.PlaceResult) activity.Activity {
	lat := place.Geometry.Location.Lat
	lng := place.Geometry.Location.Lng

	priceLevel := 0
	if place.PriceLevel != nil {
		priceLevel = *place.PriceLevel
	}
	rating := 0.0
	if place.Rating != nil {
		rating = *place.Rating
	}

	var hours []string
	if place.OpeningHours != nil {
		hours = place.OpeningHours.WeekdayText
	}

	description := ""
	if place.EditorialSummary != nil {
		description = place.EditorialSummary.Overview
	}

	return activity.Activity{
		ID:       place.PlaceID,
		Name:     place.Name,
		Category: categoryFromTypes(place.Types),
		Location: activity.Location{
			Address: place.FormattedAddress,
			Lat:     &lat,
			Lng:     &lng,
		},
		PriceLevel:   priceLevel,
		Rating:       rating,
		OpeningHours: hours,
		Description:  description,
	}
}

// placeTypeCategories maps Places types onto the fixed category list the
// API exposes. First match wins.
var placeTypeCategories = map[string]string{
	"restaurant":         "food",
	"cafe":               "food",
	"bakery":             "food",
	"bar":                "nightlife",
	"night_club":         "nightlife",
	"museum":             "culture",
	"art_gallery":        "culture",
	"park":               "outdoors",
	"tourist_attraction": "outdoors",
	"movie_theater":      "entertainment",
	"amusement_park":     "entertainment",
	"stadium":            "sports",
	"gym":                "sports",
	"shopping_mall":      "shopping",
	"department_store":   "shopping",
}

func categoryFromTypes(types []string) string {
	for _, t := range types {
		if category, ok := placeTypeCategories[t]; ok {
			return category
		}
	}
	return "entertainment"
}
