package models

// Preferences is the structured form extracted from a free-text request.
// Every field may be empty; Location is the only one the pipeline needs.
type Preferences struct {
	Location  string `json:"location"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	TimeOfDay string `json:"time_of_day"`
}
