// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/sessions/{id}", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (duration_ms).

# CORS Middleware

Allow the web client's origin (FRONTEND_URL) to call the API:

	server := http.Server{
		Handler: middleware.CORS(cfg.FrontendURL)(mux),
	}

Allows methods GET, POST, DELETE, OPTIONS with headers Content-Type and
X-Admin-Key. Preflight requests are answered with 204. OriginAllowed applies
the same rule to WebSocket upgrades.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Must select exactly 2 option(s)")

Errors are always {"error": "..."}; the message is shown to the user as is.

Parse JSON request bodies:

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
