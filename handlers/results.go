// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/vote-service/middleware"
	"github.com/danielhkuo/vote-service/results"
)

// GetResults handles GET /api/sessions/{id}/results
// Returns option and date tallies computed from the stored votes
func (h *SessionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, "Failed to get results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results.Summarize(session))
}
