// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/danielhkuo/vote-service/models"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrDuplicateID    = errors.New("session id already exists")
	ErrDuplicateVoter = errors.New("voter already voted")
)

// NewSession carries the fields needed to insert a session.
type NewSession struct {
	ID        string
	Question  string
	Options   []string
	Dates     []string
	VoteCount int
	VoteMode  models.VoteMode
}

// NewVote carries the fields needed to insert one vote.
type NewVote struct {
	VoterID string
	Name    string
	Choices []string
	Dates   []string
}

// Store is the durable record of sessions and votes.
type Store interface {
	// Create inserts a session with no votes. ErrDuplicateID if the ID is taken.
	Create(ctx context.Context, s NewSession) (models.Session, error)
	// Get returns the session with its votes keyed by voter ID. Expired
	// sessions are deleted on read and reported as ErrNotFound.
	Get(ctx context.Context, id string) (models.Session, error)
	// Delete removes the session and its votes in one transaction.
	Delete(ctx context.Context, id string) error
	// AddVote inserts one vote. ErrDuplicateVoter if the voter already voted,
	// ErrNotFound if the session is gone.
	AddVote(ctx context.Context, sessionID string, v NewVote) error
	HasVoted(ctx context.Context, sessionID, voterID string) (bool, error)
	// SweepExpired deletes every session with expiresAt < now and returns how many.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

// Clock returns the current time.
type Clock func() time.Time

func newSessionModel(s NewSession, now time.Time) models.Session {
	createdAt := now.UnixMilli()
	return models.Session{
		ID:        s.ID,
		Question:  s.Question,
		Options:   s.Options,
		Dates:     s.Dates,
		VoteCount: s.VoteCount,
		VoteMode:  s.VoteMode,
		CreatedAt: createdAt,
		ExpiresAt: createdAt + models.SessionTTL.Milliseconds(),
		Votes:     map[string]models.Vote{},
	}
}
