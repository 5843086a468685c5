package activity

// Coordinates is the nullable display coordinate pair on a formatted
// record; it mirrors the source Location rather than the query point.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// FormattedActivity is the stable presentation shape returned to clients.
// Price and Distance are display strings; PriceLevel and DistanceValue
// keep the numeric forms alongside so clients can sort without reparsing.
type FormattedActivity struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	Address       string      `json:"address"`
	Coordinates   Coordinates `json:"coordinates"`
	Price         string      `json:"price"`
	PriceLevel    int         `json:"price_level"`
	Rating        float64     `json:"rating"`
	Hours         string      `json:"hours"`
	Description   string      `json:"description"`
	Distance      string      `json:"distance"`
	DistanceValue *float64    `json:"distance_value"`
	Tags          []string    `json:"tags"`
}
