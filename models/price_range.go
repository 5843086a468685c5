package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

const MIN_PRICE_LEVEL = 0
const MAX_PRICE_LEVEL = 4

// PriceRange is an inclusive price-level band. On the wire it is either a
// "min-max" string or a two-element numeric array; anything malformed
// degrades to the full 0-4 band instead of failing the request.
type PriceRange struct {
	Min int
	Max int
}

// FullPriceRange covers every price level.
func FullPriceRange() PriceRange {
	return PriceRange{Min: MIN_PRICE_LEVEL, Max: MAX_PRICE_LEVEL}
}

// Contains reports whether the given price level falls inside the band.
func (p PriceRange) Contains(priceLevel int) bool {
	return priceLevel >= p.Min && priceLevel <= p.Max
}

func (p *PriceRange) UnmarshalJSON(data []byte) error {
	*p = FullPriceRange()

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, ok := parsePriceRangeString(s); ok {
			*p = parsed
		}
		return nil
	}

	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil && len(pair) == 2 {
		*p = PriceRange{Min: int(pair[0]), Max: int(pair[1])}
	}
	return nil
}

func (p PriceRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(p.Min) + "-" + strconv.Itoa(p.Max))
}

func parsePriceRangeString(s string) (PriceRange, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return PriceRange{}, false
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return PriceRange{}, false
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return PriceRange{}, false
	}
	return PriceRange{Min: min, Max: max}, true
}
