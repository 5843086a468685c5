package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"af-server/config"
	"af-server/models"
	"af-server/service"
	"af-server/util"
)

const (
	LAT_QUERY_ARG    = "lat"
	LNG_QUERY_ARG    = "lng"
	RADIUS_QUERY_ARG = "radius"
)

// ActivityHandler serves the structured search surface: health,
// categories, search, activity detail and the cached-activity map.
type ActivityHandler struct {
	activityService *service.ActivityService
}

func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Health handles GET /api/health.
func (h *ActivityHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ping handles GET /ping.
func (h *ActivityHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// Categories handles GET /api/categories.
func (h *ActivityHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"categories": models.Categories})
}

// Search handles POST /api/search: resolve, fetch, filter, format.
func (h *ActivityHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request must be JSON")
		return
	}
	if req.Location == "" {
		writeError(w, http.StatusBadRequest, "Location is required")
		return
	}

	response, err := h.activityService.Search(req)
	if err != nil {
		log.Printf("[ActivityHandler] Search failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// GetActivity handles GET /api/activity/{id} from the cache.
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, err := h.activityService.GetActivity(id)
	if err != nil {
		log.Printf("[ActivityHandler] Activity %q not found: %v", id, err)
		writeError(w, http.StatusNotFound, "Activity not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"details": a})
}

// PlotMap handles GET /api/activities/map, rendering cached activities
// around a point as an HTML scatter chart.
// Expects ?lat={latitude}&lng={longitude}&radius={km, optional}.
func (h *ActivityHandler) PlotMap(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()

	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LAT_QUERY_ARG)
		return
	}
	lng, err := parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LNG_QUERY_ARG)
		return
	}
	radius := config.DEFAULT_SEARCH_RADIUS_KM
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid argument "+RADIUS_QUERY_ARG)
			return
		}
	}

	activities, err := h.activityService.GetNearbyCached(lat, lng, radius)
	if err != nil {
		log.Printf("[ActivityHandler] Loading cached activities failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderActivityMap(w, activities); err != nil {
		log.Printf("[ActivityHandler] Rendering activity map failed: %v", err)
	}
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
