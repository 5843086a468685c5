package models

// FilterCriteria narrows a candidate set per request. Radius is in
// kilometers, matching the haversine output. A nil PriceRange keeps all
// price levels.
type FilterCriteria struct {
	Category   string
	Radius     float64
	PriceRange *PriceRange
}
