package service

import (
	"fmt"
	"math"
	"strings"

	"af-server/models/activity"
)

const HIGHLY_RATED_THRESHOLD = 4.7
const NEARBY_THRESHOLD_KM = 1.0

// priceSymbols maps a price level to its display symbol.
var priceSymbols = map[int]string{
	0: "Free",
	1: "$",
	2: "$$",
	3: "$$$",
	4: "$$$$",
}

// ResultFormatter turns filtered activity records into the stable
// presentation shape returned to clients. Pure transformation; formatting
// the same record twice yields identical output.
type ResultFormatter struct{}

func NewResultFormatter() *ResultFormatter {
	return &ResultFormatter{}
}

// Format maps every record deterministically; an empty input produces an
// empty, non-nil slice.
func (f *ResultFormatter) Format(records []activity.Activity) []activity.FormattedActivity {
	formatted := make([]activity.FormattedActivity, 0, len(records))
	for _, rec := range records {
		formatted = append(formatted, activity.FormattedActivity{
			ID:            rec.ID,
			Name:          rec.Name,
			Category:      rec.Category,
			Address:       rec.Location.Address,
			Coordinates:   activity.Coordinates{Lat: rec.Location.Lat, Lng: rec.Location.Lng},
			Price:         formatPriceLevel(rec.PriceLevel),
			PriceLevel:    rec.PriceLevel,
			Rating:        rec.Rating,
			Hours:         formatHours(rec.OpeningHours),
			Description:   rec.Description,
			Distance:      formatDistance(rec.Distance),
			DistanceValue: rec.Distance,
			Tags:          generateTags(rec),
		})
	}
	return formatted
}

func formatPriceLevel(priceLevel int) string {
	if symbol, ok := priceSymbols[priceLevel]; ok {
		return symbol
	}
	return "Unknown"
}

func formatHours(hours []string) string {
	if len(hours) == 0 {
		return "Hours not available"
	}
	return strings.Join(hours, ", ")
}

// formatDistance renders sub-kilometer distances in whole meters and
// everything else with two decimals.
func formatDistance(km *float64) string {
	if km == nil {
		return "Unknown"
	}
	if *km < NEARBY_THRESHOLD_KM {
		return fmt.Sprintf("%d m", int(math.Round(*km*1000)))
	}
	return fmt.Sprintf("%.2f km", *km)
}

// generateTags derives display tags in a fixed rule order: category,
// price band, rating, proximity.
func generateTags(rec activity.Activity) []string {
	tags := []string{}

	if rec.Category != "" {
		tags = append(tags, capitalize(rec.Category))
	}

	switch rec.PriceLevel {
	case 0:
		tags = append(tags, "Free")
	case 1:
		tags = append(tags, "Budget-friendly")
	case 4:
		tags = append(tags, "Luxury")
	}

	if rec.Rating >= HIGHLY_RATED_THRESHOLD {
		tags = append(tags, "Highly rated")
	}

	if rec.Distance != nil && *rec.Distance < NEARBY_THRESHOLD_KM {
		tags = append(tags, "Nearby")
	}

	return tags
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
