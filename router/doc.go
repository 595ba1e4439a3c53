// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the vote service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, hub, cfg)

# Endpoints

Health:

	GET /health

Sessions:

	POST   /api/sessions      - Create session (returns adminKey)
	GET    /api/sessions/{id} - Session with all votes
	DELETE /api/sessions/{id} - Delete session (requires X-Admin-Key)

Voting and results:

	POST /api/sessions/{id}/vote    - Submit one vote
	GET  /api/sessions/{id}/results - Option and date tallies

Realtime:

	GET /ws - WebSocket; send joinSession to receive sessionUpdate events

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(svc, cfg)
	realtimeHandler := handlers.NewRealtimeHandler(hub, cfg)

CORS is applied around the whole mux in main.
*/
package router
