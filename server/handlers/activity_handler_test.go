package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"af-server/api/places"
	redisdao "af-server/dao/redis"
	"af-server/db"
	"af-server/models"
	"af-server/models/activity"
	"af-server/service"
)

type brokenPlacesAPI struct{}

func (b *brokenPlacesAPI) SetAPIKey(apiKey string) {}

func (b *brokenPlacesAPI) FindNearby(coords models.Coordinates, timeHint string) ([]activity.Activity, error) {
	return nil, fmt.Errorf("upstream unavailable")
}

func newTestHandler(api places.PlacesAPI) (*ActivityHandler, *redisdao.RedisActivityDAO) {
	dao := redisdao.NewRedisActivityDAO(db.NewMockRedisClient(context.Background()))
	svc := service.NewActivityService(service.NewLocationResolver(), api, dao)
	return NewActivityHandler(svc), dao
}

func TestActivityHandler_Health(t *testing.T) {
	handler, _ := newTestHandler(places.NewPlacesApiClientMock())

	rec := httptest.NewRecorder()
	handler.Health(rec, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestActivityHandler_Categories(t *testing.T) {
	handler, _ := newTestHandler(places.NewPlacesApiClientMock())

	rec := httptest.NewRecorder()
	handler.Categories(rec, httptest.NewRequest("GET", "/api/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.Categories, body["categories"])
}

func TestActivityHandler_Search(t *testing.T) {
	handler, _ := newTestHandler(places.NewPlacesApiClientMock())

	body := `{"location": "New York", "category": "food", "radius": 5, "price_range": "1-4"}`
	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest("POST", "/api/search", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "New York", response.Location)
	assert.Equal(t, 2, response.ResultCount)
	require.Len(t, response.Results, 2)
	assert.Equal(t, "Fine Dining Restaurant", response.Results[0].Name)
	assert.Equal(t, "$$$$", response.Results[0].Price)
}

func TestActivityHandler_SearchValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{"Malformed JSON", `not-json`, "Request must be JSON"},
		{"Missing location", `{"category": "food"}`, "Location is required"},
		{"Empty location", `{"location": ""}`, "Location is required"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler, _ := newTestHandler(places.NewPlacesApiClientMock())

			rec := httptest.NewRecorder()
			handler.Search(rec, httptest.NewRequest("POST", "/api/search", strings.NewReader(test.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, test.wantError, body["error"])
		})
	}
}

func TestActivityHandler_SearchUpstreamFailure(t *testing.T) {
	handler, _ := newTestHandler(&brokenPlacesAPI{})

	body := `{"location": "seattle"}`
	rec := httptest.NewRecorder()
	handler.Search(rec, httptest.NewRequest("POST", "/api/search", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestActivityHandler_GetActivity(t *testing.T) {
	handler, dao := newTestHandler(places.NewPlacesApiClientMock())

	fixtures := places.MockActivities(models.Coordinates{Lat: 40.7128, Lng: -74.0060})
	require.NoError(t, dao.UpsertActivity(fixtures[0]))

	router := mux.NewRouter()
	router.HandleFunc("/api/activity/{id}", handler.GetActivity).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/activity/act-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Details activity.Activity `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Central Park Walking Tour", body.Details.Name)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/activity/act-missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivityHandler_PlotMap(t *testing.T) {
	handler, dao := newTestHandler(places.NewPlacesApiClientMock())

	fixtures := places.MockActivities(models.Coordinates{Lat: 40.7128, Lng: -74.0060})
	require.NoError(t, dao.UpsertActivity(fixtures[0]))

	rec := httptest.NewRecorder()
	handler.PlotMap(rec, httptest.NewRequest("GET", "/api/activities/map?lat=40.7128&lng=-74.0060", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Central Park Walking Tour")
}

func TestActivityHandler_PlotMapValidation(t *testing.T) {
	handler, _ := newTestHandler(places.NewPlacesApiClientMock())

	tests := []struct {
		name  string
		query string
	}{
		{"Missing lat", "lng=-74.0"},
		{"Missing lng", "lat=40.7"},
		{"Bad radius", "lat=40.7&lng=-74.0&radius=abc"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.PlotMap(rec, httptest.NewRequest("GET", "/api/activities/map?"+test.query, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
