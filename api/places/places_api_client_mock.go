package places

import (
	"af-server/models"
	"af-server/models/activity"
)

// PlacesApiClientMock serves a fixed set of synthetic activities offset
// from the query point, so results always cluster near the caller.
type PlacesApiClientMock struct{}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock.
func NewPlacesApiClientMock() *PlacesApiClientMock {
	return &PlacesApiClientMock{}
}

func (c *PlacesApiClientMock) SetAPIKey(apiKey string) {}

// FindNearby materializes the fixture set around the given center. The
// time hint is ignored in the mock.
func (c *PlacesApiClientMock) FindNearby(coords models.Coordinates, timeHint string) ([]activity.Activity, error) {
	return MockActivities(coords), nil
}

// mockFixture describes one synthetic record relative to the query point.
type mockFixture struct {
	id           string
	name         string
	category     string
	address      string
	description  string
	latOffset    float64
	lngOffset    float64
	priceLevel   int
	rating       float64
	openingHours []string
}

var mockFixtures = []mockFixture{
	{
		id: "act-1", name: "Central Park Walking Tour", category: "outdoors",
		address: "Central Park, New York", description: "Guided tour through the historic Central Park.",
		latOffset: 0.01, lngOffset: -0.01, priceLevel: 1, rating: 4.5,
		openingHours: []string{"9:00 AM - 5:00 PM"},
	},
	{
		id: "act-2", name: "Metropolitan Museum of Art", category: "culture",
		address: "1000 5th Ave, New York", description: "World-class art museum with extensive collections.",
		latOffset: -0.02, lngOffset: 0.01, priceLevel: 2, rating: 4.8,
		openingHours: []string{"10:00 AM - 5:30 PM"},
	},
	{
		id: "act-3", name: "Broadway Show", category: "entertainment",
		address: "Times Square, New York", description: "Live theatrical performance on Broadway.",
		latOffset: 0.015, lngOffset: 0.02, priceLevel: 4, rating: 4.7,
		openingHours: []string{"7:00 PM - 10:00 PM"},
	},
	{
		id: "act-4", name: "Local Coffee Shop", category: "food",
		address: "123 Coffee Lane", description: "Cozy café with specialty coffee and pastries.",
		latOffset: -0.01, lngOffset: -0.02, priceLevel: 2, rating: 4.3,
		openingHours: []string{"6:00 AM - 8:00 PM"},
	},
	{
		id: "act-5", name: "City Bike Tour", category: "outdoors",
		address: "456 Bike Avenue", description: "Guided bicycle tour of city highlights.",
		latOffset: 0.02, lngOffset: 0.03, priceLevel: 1, rating: 4.6,
		openingHours: []string{"10:00 AM - 4:00 PM"},
	},
	{
		id: "act-6", name: "Rooftop Bar", category: "nightlife",
		address: "789 Sky View", description: "Trendy rooftop bar with city views.",
		latOffset: -0.03, lngOffset: 0.02, priceLevel: 3, rating: 4.4,
		openingHours: []string{"4:00 PM - 2:00 AM"},
	},
	{
		id: "act-7", name: "Shopping Mall", category: "shopping",
		address: "101 Retail Road", description: "Large shopping center with various stores.",
		latOffset: 0.025, lngOffset: -0.015, priceLevel: 2, rating: 4.0,
		openingHours: []string{"10:00 AM - 9:00 PM"},
	},
	{
		id: "act-8", name: "Local Sports Game", category: "sports",
		address: "202 Stadium Blvd", description: "Professional sports event at the local stadium.",
		latOffset: -0.025, lngOffset: -0.03, priceLevel: 3, rating: 4.5,
		openingHours: []string{"Varies by game schedule"},
	},
	{
		id: "act-9", name: "Fine Dining Restaurant", category: "food",
		address: "303 Gourmet Street", description: "Upscale restaurant with award-winning chef.",
		latOffset: 0.008, lngOffset: -0.009, priceLevel: 4, rating: 4.9,
		openingHours: []string{"5:00 PM - 11:00 PM"},
	},
	{
		id: "act-10", name: "Modern Art Gallery", category: "culture",
		address: "404 Gallery Row", description: "Contemporary art gallery featuring local artists.",
		latOffset: -0.012, lngOffset: 0.014, priceLevel: 1, rating: 4.2,
		openingHours: []string{"11:00 AM - 6:00 PM"},
	},
}

// MockActivities builds the fixture records clustered around the given
// center coordinates.
func MockActivities(coords models.Coordinates) []activity.Activity {
	activities := make([]activity.Activity, 0, len(mockFixtures))
	for _, f := range mockFixtures {
		lat := coords.Lat + f.latOffset
		lng := coords.Lng + f.lngOffset
		activities = append(activities, activity.Activity{
			ID:       f.id,
			Name:     f.name,
			Category: f.category,
			Location: activity.Location{
				Address: f.address,
				Lat:     &lat,
				Lng:     &lng,
			},
			PriceLevel:   f.priceLevel,
			Rating:       f.rating,
			OpeningHours: f.openingHours,
			Description:  f.description,
		})
	}
	return activities
}
