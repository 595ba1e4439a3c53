// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/vote-service/cliparse"
	"github.com/danielhkuo/vote-service/handlers"
	"github.com/danielhkuo/vote-service/middleware"
	"github.com/danielhkuo/vote-service/realtime"
	"github.com/danielhkuo/vote-service/sessions"
)

func NewRouter(svc *sessions.Service, broker realtime.Broker, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(svc, cfg)
	realtimeHandler := handlers.NewRealtimeHandler(broker, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sessions
	mux.HandleFunc("POST /api/sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /api/sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("DELETE /api/sessions/{id}", middleware.WithLogging(sessionHandler.DeleteSession))

	// Voting and results
	mux.HandleFunc("POST /api/sessions/{id}/vote", middleware.WithLogging(sessionHandler.SubmitVote))
	mux.HandleFunc("GET /api/sessions/{id}/results", middleware.WithLogging(sessionHandler.GetResults))

	// Realtime updates (long-lived, not wrapped in request logging)
	mux.HandleFunc("GET /ws", realtimeHandler.Connect)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("vote-service API v1"))
	})

	return mux
}
