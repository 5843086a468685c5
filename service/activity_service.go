package service

import (
	"fmt"
	"log"
	"strings"

	"af-server/api/places"
	"af-server/config"
	redisdao "af-server/dao/redis"
	"af-server/models"
	"af-server/models/activity"
)

// ActivityService wires the recommendation pipeline: resolve the
// location, fetch candidates, filter, format.
type ActivityService struct {
	resolver    *LocationResolver
	placesAPI   places.PlacesAPI
	filter      *FilterPipeline
	formatter   *ResultFormatter
	activityDao *redisdao.RedisActivityDAO
}

// NewActivityService constructs an ActivityService with its injected
// dependencies.
func NewActivityService(
	resolver *LocationResolver,
	placesAPI places.PlacesAPI,
	activityDao *redisdao.RedisActivityDAO) *ActivityService {

	return &ActivityService{
		resolver:    resolver,
		placesAPI:   placesAPI,
		filter:      NewFilterPipeline(),
		formatter:   NewResultFormatter(),
		activityDao: activityDao,
	}
}

// Search runs the full pipeline for a structured request.
func (s *ActivityService) Search(req models.SearchRequest) (*models.SearchResponse, error) {
	coords, found := s.resolver.Resolve(req.Location)
	if !found {
		log.Printf("[ActivityService] Unresolved location %q, searching around default coordinates", req.Location)
	}

	candidates, err := s.placesAPI.FindNearby(coords, req.Datetime)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities near %s: %w", coords, err)
	}

	radius := req.Radius
	if radius <= 0 {
		radius = config.DEFAULT_SEARCH_RADIUS_KM
	}
	criteria := models.FilterCriteria{
		Category:   req.Category,
		Radius:     radius,
		PriceRange: req.PriceRange,
	}

	filtered := s.filter.Apply(candidates, coords, criteria)
	results := s.formatter.Format(filtered)

	return &models.SearchResponse{
		Location:    req.Location,
		Coordinates: coords,
		Datetime:    req.Datetime,
		Results:     results,
		ResultCount: len(results),
	}, nil
}

// Recommend runs the same pipeline from extracted preferences.
func (s *ActivityService) Recommend(prefs models.Preferences) (*models.RecommendationResponse, error) {
	resp, err := s.Search(models.SearchRequest{
		Location: prefs.Location,
		Datetime: prefs.TimeOfDay,
		Category: normalizeCategory(prefs.Category),
	})
	if err != nil {
		return nil, err
	}

	return &models.RecommendationResponse{
		Preferences:     prefs,
		Coordinates:     resp.Coordinates,
		Recommendations: resp.Results,
		ResultCount:     resp.ResultCount,
	}, nil
}

// GetActivity returns one cached activity by ID.
func (s *ActivityService) GetActivity(id string) (*activity.Activity, error) {
	return s.activityDao.GetActivity(id)
}

// GetNearbyCached returns cached activities around a point, serving the
// map plot surface.
func (s *ActivityService) GetNearbyCached(lat, lng, radiusKm float64) ([]activity.Activity, error) {
	return s.activityDao.GetNearbyActivities(lat, lng, radiusKm)
}

// normalizeCategory keeps only categories the API actually serves; the
// extractor may hand back free-form text.
func normalizeCategory(category string) string {
	for _, known := range models.Categories {
		if strings.EqualFold(category, known) {
			return known
		}
	}
	return ""
}
