package main

import (
	"log"
	"time"

	"af-server/config"
	"af-server/di"
)

func main() {
	container := di.NewContainer(config.AppEnv())

	log.Println("warming activity cache")
	if err := container.CacheRefresherService.RefreshActivities(); err != nil {
		log.Printf("initial cache refresh failed: %v", err)
	}
	container.CacheRefresherService.StartPeriodicJob(config.CACHE_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	log.Println("starting server")
	container.HttpServer.Start()
}
