package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

const LISTEN_ADDRESS = ":8080"
const SHUTDOWN_TIMEOUT = 5 * time.Second

// ActivityFinderHttpServer owns the HTTP listener lifecycle: route
// registration, serving, and graceful shutdown on SIGINT/SIGTERM.
type ActivityFinderHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewActivityFinderHttpServer(router *Router, muxRouter *mux.Router) *ActivityFinderHttpServer {
	return &ActivityFinderHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes and serves until a termination signal
// arrives, then drains in-flight requests before returning.
func (s *ActivityFinderHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    LISTEN_ADDRESS,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[ActivityFinderHttpServer] Listening on %s", LISTEN_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[ActivityFinderHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[ActivityFinderHttpServer] Server exiting")
}
