package models

// TextSearchResponse is the Google Places Text Search wire format,
// trimmed to the fields the activity mapper consumes.
type TextSearchResponse struct {
	Results      []PlaceResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type PlaceResult struct {
	PlaceID          string             `json:"place_id"`
	Name             string             `json:"name"`
	FormattedAddress string             `json:"formatted_address"`
	Geometry         PlaceGeometry      `json:"geometry"`
	PriceLevel       *int               `json:"price_level,omitempty"`
	Rating           *float64           `json:"rating,omitempty"`
	Types            []string           `json:"types,omitempty"`
	OpeningHours     *PlaceOpeningHours `json:"opening_hours,omitempty"`
	EditorialSummary *PlaceEditorial    `json:"editorial_summary,omitempty"`
}

type PlaceGeometry struct {
	Location PlaceLatLng `json:"location"`
}

type PlaceLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceOpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type PlaceEditorial struct {
	Overview string `json:"overview,omitempty"`
}
