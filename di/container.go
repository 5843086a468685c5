package di

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"af-server/api"
	"af-server/api/gemini"
	"af-server/api/places"
	"af-server/config"
	redisdao "af-server/dao/redis"
	"af-server/db"
	"af-server/server"
	"af-server/server/handlers"
	"af-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	ActivityDao           *redisdao.RedisActivityDAO
	PlacesAPI             places.PlacesAPI
	PreferenceExtractor   gemini.PreferenceExtractor
	LocationResolver      *service.LocationResolver
	ActivityService       *service.ActivityService
	CacheRefresherService *service.CacheRefresherService
	ActivityHandler       *handlers.ActivityHandler
	RecommendationHandler *handlers.RecommendationHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	HttpServer            *server.ActivityFinderHttpServer
}

// NewContainer initializes and wires up all dependencies. Every client
// that talks to an external service is constructed once here and
// injected; non-prod envs get mocks instead.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)

	activityDao := redisdao.NewRedisActivityDAO(redisClient)

	var placesAPI places.PlacesAPI
	if env != "prod" {
		log.Printf("Using mock places api")
		placesAPI = places.NewPlacesApiClientMock()
	} else {
		log.Printf("Using prod places api")
		httpClient := api.NewHTTPClient(config.PLACES_ENDPOINT_BASE)
		client := places.NewPlacesApiClient(httpClient)
		client.SetAPIKey(config.GoogleAPIKey())
		placesAPI = client
	}

	var extractor gemini.PreferenceExtractor
	if env != "prod" {
		log.Printf("Using mock preference extractor")
		extractor = gemini.NewGeminiExtractorClientMock()
	} else {
		log.Printf("Using gemini preference extractor")
		client, err := gemini.NewGeminiExtractorClient(ctx, config.GoogleGenAIKey())
		if err != nil {
			log.Fatalf("Failed to initialize gemini client: %v", err)
		}
		extractor = client
	}

	resolver := service.NewLocationResolver()
	activityService := service.NewActivityService(resolver, placesAPI, activityDao)
	cacheRefresherService := service.NewCacheRefresherService(activityDao, placesAPI, resolver)

	activityHandler := handlers.NewActivityHandler(activityService)
	recommendationHandler := handlers.NewRecommendationHandler(extractor, activityService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(activityHandler, recommendationHandler, muxRouter)
	httpServer := server.NewActivityFinderHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		ActivityDao:           activityDao,
		PlacesAPI:             placesAPI,
		PreferenceExtractor:   extractor,
		LocationResolver:      resolver,
		ActivityService:       activityService,
		CacheRefresherService: cacheRefresherService,
		ActivityHandler:       activityHandler,
		RecommendationHandler: recommendationHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		HttpServer:            httpServer,
	}
}
