package store

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/vote-service/models"
)

// MemoryStore keeps sessions in process memory. It mirrors SQLStore
// semantics and exists so the service can be tested without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      Clock
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	o := buildOptions(opts)
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		now:      o.now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, ns NewSession) (models.Session, error) {
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}
	session := newSessionModel(ns, s.now())
	session.Options = cloneList(session.Options)
	session.Dates = cloneList(session.Dates)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; exists {
		return models.Session{}, ErrDuplicateID
	}
	s.sessions[session.ID] = session
	return cloneSession(session), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (models.Session, error) {
	if err := ctx.Err(); err != nil {
		return models.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	if session.ExpiredAt(s.now()) {
		delete(s.sessions, session.ID)
		return models.Session{}, ErrNotFound
	}
	return cloneSession(session), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) AddVote(ctx context.Context, sessionID string, v NewVote) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	if _, voted := session.Votes[v.VoterID]; voted {
		return ErrDuplicateVoter
	}
	choices := cloneList(v.Choices)
	if choices == nil {
		choices = []string{}
	}
	session.Votes[v.VoterID] = models.Vote{
		Name:      v.Name,
		Choices:   choices,
		Dates:     cloneList(v.Dates),
		Timestamp: s.now().UnixMilli(),
	}
	return nil
}

func (s *MemoryStore) HasVoted(ctx context.Context, sessionID, voterID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return false, nil
	}
	_, voted := session.Votes[voterID]
	return voted, nil
}

func (s *MemoryStore) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cutoff := now.UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, session := range s.sessions {
		if session.ExpiresAt < cutoff {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}

func cloneList(list []string) []string {
	if list == nil {
		return nil
	}
	return append([]string{}, list...)
}

func cloneSession(s models.Session) models.Session {
	out := s
	out.Options = cloneList(s.Options)
	out.Dates = cloneList(s.Dates)
	out.Votes = make(map[string]models.Vote, len(s.Votes))
	for id, v := range s.Votes {
		v.Choices = cloneList(v.Choices)
		v.Dates = cloneList(v.Dates)
		out.Votes[id] = v
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
