package service

import (
	"log"
	"sort"
	"strings"

	"af-server/models"
)

// DefaultCoordinates is used when a location cannot be resolved. The
// fallback is deliberate: free-text requests stay usable, and callers get
// found=false so they can tell a real match from the default.
var DefaultCoordinates = models.Coordinates{Lat: 37.7749, Lng: -122.4194} // San Francisco

// knownLocations maps normalized city names to coordinates. Read-only
// after init.
var knownLocations = map[string]models.Coordinates{
	"new york":      {Lat: 40.7128, Lng: -74.0060},
	"los angeles":   {Lat: 34.0522, Lng: -118.2437},
	"chicago":       {Lat: 41.8781, Lng: -87.6298},
	"san francisco": {Lat: 37.7749, Lng: -122.4194},
	"miami":         {Lat: 25.7617, Lng: -80.1918},
	"seattle":       {Lat: 47.6062, Lng: -122.3321},
	"boston":        {Lat: 42.3601, Lng: -71.0589},
	"dallas":        {Lat: 32.7767, Lng: -96.7970},
	"denver":        {Lat: 39.7392, Lng: -104.9903},
	"austin":        {Lat: 30.2672, Lng: -97.7431},
}

// knownLocationNames holds the table keys sorted, so substring matching
// is deterministic regardless of map iteration order.
var knownLocationNames []string

func init() {
	knownLocationNames = make([]string, 0, len(knownLocations))
	for name := range knownLocations {
		knownLocationNames = append(knownLocationNames, name)
	}
	sort.Strings(knownLocationNames)
}

// LocationResolver turns free-text place names into coordinates using a
// static city table. Pure lookup, no side effects.
type LocationResolver struct{}

func NewLocationResolver() *LocationResolver {
	return &LocationResolver{}
}

// Resolve normalizes the input and tries an exact table match, then
// substring containment in either direction. Unresolvable input yields
// DefaultCoordinates and found=false.
func (r *LocationResolver) Resolve(locationText string) (models.Coordinates, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(locationText))
	if cleaned == "" {
		return DefaultCoordinates, false
	}

	if coords, ok := knownLocations[cleaned]; ok {
		return coords, true
	}

	for _, name := range knownLocationNames {
		if strings.Contains(cleaned, name) || strings.Contains(name, cleaned) {
			return knownLocations[name], true
		}
	}

	log.Printf("[LocationResolver] No match for %q, using default coordinates", locationText)
	return DefaultCoordinates, false
}

// KnownCities returns the resolvable city names in sorted order.
func (r *LocationResolver) KnownCities() []string {
	cities := make([]string, len(knownLocationNames))
	copy(cities, knownLocationNames)
	return cities
}

// Suggest returns up to max title-cased city names containing the
// partial input.
func (r *LocationResolver) Suggest(partial string, max int) []string {
	cleaned := strings.ToLower(strings.TrimSpace(partial))
	if cleaned == "" {
		return nil
	}

	var suggestions []string
	for _, name := range knownLocationNames {
		if strings.Contains(name, cleaned) {
			suggestions = append(suggestions, titleCase(name))
			if len(suggestions) >= max {
				break
			}
		}
	}
	return suggestions
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
