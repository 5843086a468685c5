package models

// SearchRequest is the POST /api/search body. Location is the only
// required field; Radius defaults to the configured search radius when
// zero.
type SearchRequest struct {
	Location   string      `json:"location"`
	Datetime   string      `json:"datetime,omitempty"`
	Category   string      `json:"category,omitempty"`
	Radius     float64     `json:"radius,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
}
