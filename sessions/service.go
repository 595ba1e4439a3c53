// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/vote-service/auth"
	"github.com/danielhkuo/vote-service/models"
	"github.com/danielhkuo/vote-service/store"
	"github.com/danielhkuo/vote-service/validator"
)

// maxIDAttempts bounds retries when a generated session ID collides.
const maxIDAttempts = 5

var ErrVoterNameRequired = errors.New("voter name required")

// ValidationError rejects a malformed create request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Publisher fans a session snapshot out to everyone watching it.
type Publisher interface {
	Publish(sessionID string, session models.Session)
}

// CreateInput describes a new session.
type CreateInput struct {
	Question  string
	Options   []string
	Dates     []string // nil: no date collection
	VoteCount int
	VoteMode  models.VoteMode
}

// VoteInput is one voter's submission.
type VoteInput struct {
	SessionID string
	VoterID   string
	VoterName string
	Choices   []string
	Dates     []string
}

type Service struct {
	store     store.Store
	publisher Publisher
	now       func() time.Time
}

func NewService(st store.Store, publisher Publisher) *Service {
	return &Service{store: st, publisher: publisher, now: time.Now}
}

// WithClock replaces the clock used for sweeping. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateSession validates the request and stores a new session with a fresh ID.
func (s *Service) CreateSession(ctx context.Context, in CreateInput) (models.Session, error) {
	if err := validateCreate(in); err != nil {
		return models.Session{}, err
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id, err := auth.GenerateSessionID()
		if err != nil {
			return models.Session{}, fmt.Errorf("generate session id: %w", err)
		}

		session, err := s.store.Create(ctx, store.NewSession{
			ID:        id,
			Question:  in.Question,
			Options:   in.Options,
			Dates:     in.Dates,
			VoteCount: in.VoteCount,
			VoteMode:  in.VoteMode,
		})
		if errors.Is(err, store.ErrDuplicateID) {
			slog.Warn("session id collision", "session_id", id, "attempt", attempt)
			continue
		}
		if err != nil {
			return models.Session{}, fmt.Errorf("create session: %w", err)
		}

		slog.Info("session created",
			"session_id", id,
			"options", len(in.Options),
			"dates", len(in.Dates),
			"vote_mode", in.VoteMode,
			"vote_count", in.VoteCount,
		)
		return session, nil
	}

	return models.Session{}, fmt.Errorf("create session: %w after %d attempts", store.ErrDuplicateID, maxIDAttempts)
}

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.Question) == "" {
		return invalid("No question to vote on")
	}
	if len(in.Options) == 0 {
		return invalid("No options to vote on")
	}
	if len(in.Options) < 2 {
		return invalid("Need at least 2 options to vote on")
	}
	for _, option := range in.Options {
		if strings.TrimSpace(option) == "" {
			return invalid("Options cannot be blank")
		}
	}
	if in.VoteCount < 1 {
		return invalid("Vote count must be at least 1")
	}
	if len(in.Options) < in.VoteCount {
		return invalid("Not enough options to vote on")
	}
	if !in.VoteMode.Valid() {
		return invalid("Unknown vote mode %q", in.VoteMode)
	}
	if in.Dates != nil {
		if len(in.Dates) == 0 {
			return invalid("Must offer at least one date")
		}
		for _, date := range in.Dates {
			if _, err := time.Parse(models.DateLayout, date); err != nil {
				return invalid("Invalid date: %s", date)
			}
		}
	}
	return nil
}

// GetSession returns the session with its votes, or store.ErrNotFound.
func (s *Service) GetSession(ctx context.Context, id string) (models.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Session{}, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// SubmitVote records one vote and notifies the session's watchers. Rejections
// are *validator.RejectionError; a missing or expired session is store.ErrNotFound.
func (s *Service) SubmitVote(ctx context.Context, in VoteInput) (models.Session, error) {
	if err := auth.ValidateVoterID(in.VoterID); err != nil {
		return models.Session{}, &validator.RejectionError{Reason: err, Message: "Missing or invalid voter ID"}
	}
	if strings.TrimSpace(in.VoterName) == "" {
		return models.Session{}, &validator.RejectionError{Reason: ErrVoterNameRequired, Message: "Please enter your name"}
	}

	session, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	dates := in.Dates
	if !session.HasDates() {
		dates = nil
	}

	err = validator.Validate(session, validator.Ballot{
		VoterID: in.VoterID,
		Choices: in.Choices,
		Dates:   dates,
	})
	if err != nil {
		return models.Session{}, err
	}

	err = s.store.AddVote(ctx, in.SessionID, store.NewVote{
		VoterID: in.VoterID,
		Name:    in.VoterName,
		Choices: in.Choices,
		Dates:   dates,
	})
	if errors.Is(err, store.ErrDuplicateVoter) {
		return models.Session{}, validator.DuplicateVoter()
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("add vote: %w", err)
	}

	updated, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("reload session: %w", err)
	}

	slog.Info("vote recorded",
		"session_id", in.SessionID,
		"voters", len(updated.Votes),
	)

	if s.publisher != nil {
		s.publisher.Publish(in.SessionID, updated)
	}
	return updated, nil
}

// DeleteSession removes a session and all of its votes.
func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	slog.Info("session deleted", "session_id", id)
	return nil
}

// SweepExpired deletes every expired session and returns how many went.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.store.SweepExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("sweep expired sessions: %w", err)
	}
	return n, nil
}

// RunSweeper sweeps immediately and then every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	s.sweepOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Service) sweepOnce(ctx context.Context) {
	n, err := s.SweepExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("failed to sweep expired sessions", "error", err)
		}
		return
	}
	if n > 0 {
		slog.Info("expired sessions removed", "count", n)
	}
}
