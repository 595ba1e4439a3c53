// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP and WebSocket handlers for the vote service.

# Handler Types

  - SessionHandler: create, read, vote, results and delete
  - RealtimeHandler: WebSocket endpoint for live session updates

Handlers are thin. They decode the request, call the sessions.Service and
map its errors onto status codes:

	sessionHandler := handlers.NewSessionHandler(svc, cfg)
	realtimeHandler := handlers.NewRealtimeHandler(hub, cfg)

# Endpoints

	POST   /api/sessions              → CreateSession (201, returns adminKey)
	GET    /api/sessions/{id}         → GetSession
	POST   /api/sessions/{id}/vote    → SubmitVote
	GET    /api/sessions/{id}/results → GetResults
	DELETE /api/sessions/{id}         → DeleteSession (X-Admin-Key)
	GET    /ws                        → Connect

# Errors

Every error body is {"error": "..."}:

  - 400: invalid JSON, invalid session, rejected vote
  - 401: missing or wrong X-Admin-Key
  - 404: "Session not found" (unknown or expired)
  - 500: generic message; the cause is only logged

# Voter Identity

voterId is generated and stored by the browser. The server only checks its
shape, so a client that changes its ID can vote again. This is accepted for
ad-hoc sessions.
*/
package handlers
