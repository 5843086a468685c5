package service

import (
	"math"
	"sort"

	"af-server/models"
	"af-server/models/activity"
)

// FilterPipeline narrows and ranks candidate activities: category match,
// price band, distance attachment, radius cut, then a stable ascending
// sort by distance with unknown distances last.
type FilterPipeline struct{}

func NewFilterPipeline() *FilterPipeline {
	return &FilterPipeline{}
}

// Apply runs the full pipeline against the query point. The input slice
// is not modified; surviving records are returned as copies with
// Distance attached. Records without coordinates keep a nil distance and
// are never excluded by radius.
func (p *FilterPipeline) Apply(records []activity.Activity, coords models.Coordinates, criteria models.FilterCriteria) []activity.Activity {
	priceRange := models.FullPriceRange()
	if criteria.PriceRange != nil {
		priceRange = *criteria.PriceRange
	}

	filtered := make([]activity.Activity, 0, len(records))
	for _, rec := range records {
		if criteria.Category != "" && rec.Category != criteria.Category {
			continue
		}
		if !priceRange.Contains(rec.PriceLevel) {
			continue
		}

		rec.Distance = nil
		if rec.HasCoordinates() {
			d := roundKm(haversineKm(coords.Lat, coords.Lng, *rec.Location.Lat, *rec.Location.Lng))
			if d > criteria.Radius {
				continue
			}
			rec.Distance = &d
		}
		filtered = append(filtered, rec)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return distanceOrInf(&filtered[i]) < distanceOrInf(&filtered[j])
	})
	return filtered
}

func distanceOrInf(a *activity.Activity) float64 {
	if a.Distance == nil {
		return math.Inf(1)
	}
	return *a.Distance
}
