// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/vote-service/auth"
	"github.com/danielhkuo/vote-service/cliparse"
	"github.com/danielhkuo/vote-service/middleware"
	"github.com/danielhkuo/vote-service/models"
	"github.com/danielhkuo/vote-service/sessions"
	"github.com/danielhkuo/vote-service/store"
	"github.com/danielhkuo/vote-service/validator"
)

const sessionNotFound = "Session not found"

type SessionHandler struct {
	svc *sessions.Service
	cfg cliparse.Config
}

func NewSessionHandler(svc *sessions.Service, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{svc: svc, cfg: cfg}
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	session, err := h.svc.CreateSession(r.Context(), sessions.CreateInput{
		Question:  req.Question,
		Options:   req.Options,
		Dates:     req.Dates,
		VoteCount: req.VoteCount,
		VoteMode:  req.VoteMode,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to create session")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: session.ID,
		Session:   session,
		AdminKey:  auth.GenerateAdminKey(session.ID, h.cfg.AdminKeySalt),
	})
}

// GetSession handles GET /api/sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, "Failed to get session")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, session)
}

// SubmitVote handles POST /api/sessions/{id}/vote
func (h *SessionHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	session, err := h.svc.SubmitVote(r.Context(), sessions.VoteInput{
		SessionID: sessionID,
		VoterID:   req.VoterID,
		VoterName: req.VoterName,
		Choices:   req.Choices,
		Dates:     req.Dates,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to submit vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, session)
}

// DeleteSession handles DELETE /api/sessions/{id}
// Requires the X-Admin-Key returned when the session was created
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(sessionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	if err := h.svc.DeleteSession(r.Context(), sessionID); err != nil {
		writeServiceError(w, err, "Failed to delete session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service errors onto HTTP responses. Only
// unexpected failures are logged; their details never reach the client.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var verr *sessions.ValidationError
	var rej *validator.RejectionError

	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.As(err, &rej):
		middleware.ErrorResponse(w, http.StatusBadRequest, rej.Message)
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, sessionNotFound)
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}
