package places

import (
	"math"
	"testing"

	"af-server/models"
)

func TestPlacesApiClientMock_FindNearby(t *testing.T) {
	mock := NewPlacesApiClientMock()
	center := models.Coordinates{Lat: 40.7128, Lng: -74.0060}

	activities, err := mock.FindNearby(center, "evening")
	if err != nil {
		t.Fatalf("FindNearby failed: %v", err)
	}
	if len(activities) != 10 {
		t.Fatalf("Expected 10 activities, got %d", len(activities))
	}

	priceCounts := map[int]int{}
	for _, a := range activities {
		if !a.HasCoordinates() {
			t.Errorf("Activity %s missing coordinates", a.ID)
			continue
		}
		if math.Abs(*a.Location.Lat-center.Lat) > 0.05 || math.Abs(*a.Location.Lng-center.Lng) > 0.05 {
			t.Errorf("Activity %s not clustered near center: %+v", a.ID, a.Location)
		}
		priceCounts[a.PriceLevel]++
	}

	wantCounts := map[int]int{1: 3, 2: 3, 3: 2, 4: 2}
	for level, want := range wantCounts {
		if priceCounts[level] != want {
			t.Errorf("Expected %d activities at price level %d, got %d", want, level, priceCounts[level])
		}
	}
}

func TestPlacesApiClientMock_Deterministic(t *testing.T) {
	mock := NewPlacesApiClientMock()
	center := models.Coordinates{Lat: 41.8781, Lng: -87.6298}

	first, _ := mock.FindNearby(center, "")
	second, _ := mock.FindNearby(center, "morning")

	for i := range first {
		if first[i].ID != second[i].ID || *first[i].Location.Lat != *second[i].Location.Lat {
			t.Errorf("Fixture %d differs between calls", i)
		}
	}
}
