// Package activity holds the candidate and presentation records that flow
// through the recommendation pipeline.
package activity

import "fmt"

// Location is where an activity takes place. Lat/Lng are pointers because
// some upstream records carry an address with no usable coordinates; those
// records are kept downstream but never radius-filtered.
type Location struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// Activity is a raw candidate record produced by an activity source.
// Distance is the great-circle distance from the query point in
// kilometers, attached by the filter pipeline; nil until then, and nil
// for records without coordinates.
type Activity struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Location     Location `json:"location"`
	PriceLevel   int      `json:"price_level"`
	Rating       float64  `json:"rating"`
	OpeningHours []string `json:"opening_hours"`
	Description  string   `json:"description"`

	Distance *float64 `json:"distance,omitempty"`
}

func (a *Activity) ToString() string {
	return fmt.Sprintf("Activity(id=%s, name=%s, category=%s)", a.ID, a.Name, a.Category)
}

// HasCoordinates reports whether the record can take part in distance
// computation and radius filtering.
func (a *Activity) HasCoordinates() bool {
	return a.Location.Lat != nil && a.Location.Lng != nil
}
