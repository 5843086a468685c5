package service

import (
	"log"
	"time"

	"af-server/api/places"
	redisdao "af-server/dao/redis"
)

// CacheRefresherService periodically warms the Redis geo cache with
// activities around every known city, so detail lookups and the map
// surface have data without an upstream round trip.
type CacheRefresherService struct {
	activityDao *redisdao.RedisActivityDAO
	placesAPI   places.PlacesAPI
	resolver    *LocationResolver
}

// NewCacheRefresherService constructs a new refresher with dependencies.
func NewCacheRefresherService(
	activityDao *redisdao.RedisActivityDAO,
	placesAPI places.PlacesAPI,
	resolver *LocationResolver) *CacheRefresherService {

	return &CacheRefresherService{
		activityDao: activityDao,
		placesAPI:   placesAPI,
		resolver:    resolver,
	}
}

// StartPeriodicJob launches the background refresh loop at the given
// interval.
func (cr *CacheRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CacheRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CacheRefresherService] Running periodic cache refresh job.")
		if err := cr.RefreshActivities(); err != nil {
			log.Printf("[CacheRefresherService] RefreshActivities returned error: %v", err)
		} else {
			log.Println("[CacheRefresherService] RefreshActivities completed successfully.")
		}
	}
}

// RefreshActivities fetches candidates for every known city and upserts
// them into the geo cache. Per-city failures are logged and skipped so a
// single bad upstream response never aborts the sweep.
func (cr *CacheRefresherService) RefreshActivities() error {
	cities := cr.resolver.KnownCities()
	log.Printf("[CacheRefresherService] Refreshing activities for %d cities", len(cities))

	for _, city := range cities {
		coords, ok := cr.resolver.Resolve(city)
		if !ok {
			continue
		}

		activities, err := cr.placesAPI.FindNearby(coords, "")
		if err != nil {
			log.Printf("[CacheRefresherService] Fetch failed for %q: %v", city, err)
			continue
		}

		cached := 0
		for _, a := range activities {
			if !a.HasCoordinates() {
				log.Printf("[CacheRefresherService] Skipping %s: no coordinates", a.ID)
				continue
			}
			if err := cr.activityDao.UpsertActivity(a); err != nil {
				log.Printf("[CacheRefresherService] Upsert failed for %s: %v", a.ID, err)
				continue
			}
			cached++
		}
		log.Printf("[CacheRefresherService] Cached %d activities for %q", cached, city)
	}
	return nil
}
