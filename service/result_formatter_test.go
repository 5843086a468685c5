package service

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"af-server/models/activity"
)

func floatPtr(v float64) *float64 { return &v }

func TestResultFormatter_Format(t *testing.T) {
	formatter := NewResultFormatter()
	lat, lng := 40.72, -74.01
	distance := 0.5

	records := []activity.Activity{
		{
			ID:           "act-1",
			Name:         "Central Park Walking Tour",
			Category:     "outdoors",
			Location:     activity.Location{Address: "Central Park, New York", Lat: &lat, Lng: &lng},
			PriceLevel:   1,
			Rating:       4.5,
			OpeningHours: []string{"9:00 AM - 5:00 PM"},
			Description:  "Guided tour through the historic Central Park.",
			Distance:     &distance,
		},
	}

	results := formatter.Format(records)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "act-1", r.ID)
	assert.Equal(t, "Central Park, New York", r.Address)
	assert.Equal(t, "$", r.Price)
	assert.Equal(t, 1, r.PriceLevel)
	assert.Equal(t, "9:00 AM - 5:00 PM", r.Hours)
	assert.Equal(t, "500 m", r.Distance)
	assert.Equal(t, &distance, r.DistanceValue)
	assert.Equal(t, []string{"Outdoors", "Budget-friendly", "Nearby"}, r.Tags)
}

func TestResultFormatter_PriceSymbols(t *testing.T) {
	tests := []struct {
		priceLevel int
		want       string
	}{
		{0, "Free"},
		{1, "$"},
		{2, "$$"},
		{3, "$$$"},
		{4, "$$$$"},
		{7, "Unknown"},
		{-1, "Unknown"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, formatPriceLevel(test.priceLevel))
	}
}

func TestResultFormatter_Hours(t *testing.T) {
	assert.Equal(t, "Hours not available", formatHours(nil))
	assert.Equal(t, "Hours not available", formatHours([]string{}))
	assert.Equal(t, "Mon 9-5, Tue 9-5", formatHours([]string{"Mon 9-5", "Tue 9-5"}))
}

func TestResultFormatter_Distance(t *testing.T) {
	tests := []struct {
		name string
		km   *float64
		want string
	}{
		{"Unknown distance", nil, "Unknown"},
		{"Sub-kilometer in meters", floatPtr(0.75), "750 m"},
		{"Kilometers with two decimals", floatPtr(2.345), "2.35 km"},
		{"Exactly one kilometer", floatPtr(1.0), "1.00 km"},
		{"Zero distance", floatPtr(0), "0 m"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, formatDistance(test.km))
		})
	}
}

func TestResultFormatter_Tags(t *testing.T) {
	tests := []struct {
		name string
		rec  activity.Activity
		want []string
	}{
		{
			"Free and highly rated",
			activity.Activity{Category: "culture", PriceLevel: 0, Rating: 4.8},
			[]string{"Culture", "Free", "Highly rated"},
		},
		{
			"Luxury nearby",
			activity.Activity{Category: "food", PriceLevel: 4, Rating: 4.9, Distance: floatPtr(0.2)},
			[]string{"Food", "Luxury", "Highly rated", "Nearby"},
		},
		{
			"Mid price gets no price tag",
			activity.Activity{Category: "sports", PriceLevel: 2, Rating: 4.0, Distance: floatPtr(3.0)},
			[]string{"Sports"},
		},
		{
			"Rating threshold is inclusive",
			activity.Activity{Category: "nightlife", PriceLevel: 3, Rating: 4.7},
			[]string{"Nightlife", "Highly rated"},
		},
		{
			"No category",
			activity.Activity{PriceLevel: 2, Rating: 1.0},
			[]string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, generateTags(test.rec))
		})
	}
}

func TestResultFormatter_EmptyInput(t *testing.T) {
	formatter := NewResultFormatter()

	results := formatter.Format(nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestResultFormatter_Deterministic(t *testing.T) {
	formatter := NewResultFormatter()
	lat, lng := 40.72, -74.01

	records := []activity.Activity{
		{
			ID: "act-2", Name: "Metropolitan Museum of Art", Category: "culture",
			Location:   activity.Location{Address: "1000 5th Ave", Lat: &lat, Lng: &lng},
			PriceLevel: 2, Rating: 4.8, Distance: floatPtr(1.5),
		},
	}

	first := formatter.Format(records)
	second := formatter.Format(records)
	assert.True(t, reflect.DeepEqual(first, second))
}
