// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/danielhkuo/vote-service/models"
)

// Dialect selects placeholder syntax and error decoding for a SQL backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

type storeOptions struct {
	now Clock
}

// Option configures a store.
type Option func(*storeOptions)

// WithClock overrides the store's notion of the current time.
func WithClock(c Clock) Option {
	return func(o *storeOptions) {
		if c != nil {
			o.now = c
		}
	}
}

func buildOptions(opts []Option) storeOptions {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SQLStore persists sessions and votes through database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     Clock
}

func NewSQLStore(db *sql.DB, dialect Dialect, opts ...Option) *SQLStore {
	o := buildOptions(opts)
	return &SQLStore{db: db, dialect: dialect, now: o.now}
}

// q rewrites ? placeholders to $n for postgres.
func (s *SQLStore) q(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLStore) Create(ctx context.Context, ns NewSession) (models.Session, error) {
	session := newSessionModel(ns, s.now())

	optionsBlob, err := EncodeList(session.Options)
	if err != nil {
		return models.Session{}, err
	}
	datesBlob, err := EncodeList(session.Dates)
	if err != nil {
		return models.Session{}, err
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO sessions (id, question, options, dates, vote_count, vote_mode, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), session.ID, session.Question, optionsBlob, datesBlob, session.VoteCount, string(session.VoteMode),
		session.CreatedAt, session.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Session{}, ErrDuplicateID
		}
		return models.Session{}, fmt.Errorf("insert session: %w", err)
	}

	return session, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (models.Session, error) {
	var (
		session                models.Session
		optionsBlob, datesBlob sql.NullString
		voteMode               string
	)
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, question, options, dates, vote_count, vote_mode, created_at, expires_at
		FROM sessions
		WHERE id = ?
	`), id).Scan(
		&session.ID, &session.Question, &optionsBlob, &datesBlob,
		&session.VoteCount, &voteMode, &session.CreatedAt, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("query session: %w", err)
	}
	session.VoteMode = models.VoteMode(voteMode)

	if session.ExpiredAt(s.now()) {
		if err := s.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
			return models.Session{}, fmt.Errorf("delete expired session: %w", err)
		}
		return models.Session{}, ErrNotFound
	}

	if session.Options, err = DecodeList(optionsBlob); err != nil {
		return models.Session{}, err
	}
	if session.Dates, err = DecodeList(datesBlob); err != nil {
		return models.Session{}, err
	}

	session.Votes, err = s.votes(ctx, id)
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}

func (s *SQLStore) votes(ctx context.Context, sessionID string) (map[string]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT voter_id, voter_name, choices, dates, timestamp
		FROM votes
		WHERE session_id = ?
		ORDER BY id
	`), sessionID)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := map[string]models.Vote{}
	for rows.Next() {
		var (
			voterID        string
			vote           models.Vote
			choices, dates sql.NullString
		)
		if err := rows.Scan(&voterID, &vote.Name, &choices, &dates, &vote.Timestamp); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		if vote.Choices, err = DecodeList(choices); err != nil {
			return nil, err
		}
		if vote.Dates, err = DecodeList(dates); err != nil {
			return nil, err
		}
		votes[voterID] = vote
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}

	return votes, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Votes are removed explicitly so the cascade does not depend on the
	// foreign_keys pragma being enabled.
	if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM votes WHERE session_id = ?`), id); err != nil {
		return fmt.Errorf("delete votes: %w", err)
	}

	res, err := tx.ExecContext(ctx, s.q(`DELETE FROM sessions WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

func (s *SQLStore) AddVote(ctx context.Context, sessionID string, v NewVote) error {
	if v.Choices == nil {
		v.Choices = []string{}
	}
	choices, err := EncodeList(v.Choices)
	if err != nil {
		return err
	}
	dates, err := EncodeList(v.Dates)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO votes (session_id, voter_id, voter_name, choices, dates, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`), sessionID, v.VoterID, v.Name, choices, dates, s.now().UnixMilli())
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrDuplicateVoter
		case isForeignKeyViolation(err):
			return ErrNotFound
		}
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

func (s *SQLStore) HasVoted(ctx context.Context, sessionID, voterID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT 1 FROM votes WHERE session_id = ? AND voter_id = ?
	`), sessionID, voterID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query vote: %w", err)
	}
	return true, nil
}

func (s *SQLStore) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UnixMilli()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.q(`
		DELETE FROM votes
		WHERE session_id IN (SELECT id FROM sessions WHERE expires_at < ?)
	`), cutoff); err != nil {
		return 0, fmt.Errorf("delete expired votes: %w", err)
	}

	res, err := tx.ExecContext(ctx, s.q(`DELETE FROM sessions WHERE expires_at < ?`), cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sweep: %w", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
		return false
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

var _ Store = (*SQLStore)(nil)
