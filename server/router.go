package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ActivityRoutes is the structured-search surface the router binds.
// Declared as an interface so router tests can stub the handlers.
type ActivityRoutes interface {
	Health(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
	Categories(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	GetActivity(w http.ResponseWriter, r *http.Request)
	PlotMap(w http.ResponseWriter, r *http.Request)
}

// RecommendationRoutes is the free-text surface the router binds.
type RecommendationRoutes interface {
	Recommend(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	activityHandler       ActivityRoutes
	recommendationHandler RecommendationRoutes
	router                *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	activityHandler ActivityRoutes,
	recommendationHandler RecommendationRoutes,
	router *mux.Router) *Router {

	return &Router{
		activityHandler:       activityHandler,
		recommendationHandler: recommendationHandler,
		router:                router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/api/health", r.activityHandler.Health).Methods("GET")
	r.router.HandleFunc("/api/categories", r.activityHandler.Categories).Methods("GET")
	r.router.HandleFunc("/api/search", r.activityHandler.Search).Methods("POST")
	r.router.HandleFunc("/api/activity/{id}", r.activityHandler.GetActivity).Methods("GET")

	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/api/activities/map", r.activityHandler.PlotMap).Methods("GET")

	r.router.HandleFunc("/api/recommendations", r.recommendationHandler.Recommend).Methods("POST")

	r.router.HandleFunc("/ping", r.activityHandler.Ping).Methods("GET")
}
