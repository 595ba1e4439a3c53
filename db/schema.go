// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/vote-service/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case cliparse.DatabaseSQLite:
		ddl = sqliteSchema
	case cliparse.DatabasePostgres:
		ddl = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are Unix milliseconds in both dialects.

const sqliteSchema = `
-- Sessions
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    options TEXT NOT NULL,
    dates TEXT,
    vote_count INTEGER NOT NULL,
    vote_mode TEXT NOT NULL CHECK (vote_mode IN ('exactly', 'minimum', 'maximum')),
    created_at INTEGER NOT NULL,
    expires_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    voter_name TEXT NOT NULL,
    choices TEXT NOT NULL,
    dates TEXT,
    timestamp INTEGER NOT NULL,
    UNIQUE (session_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_session ON votes(session_id);
`

const postgresSchema = `
-- Sessions
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    options TEXT NOT NULL,
    dates TEXT,
    vote_count INTEGER NOT NULL,
    vote_mode TEXT NOT NULL CHECK (vote_mode IN ('exactly', 'minimum', 'maximum')),
    created_at BIGINT NOT NULL,
    expires_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id BIGSERIAL PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    voter_name TEXT NOT NULL,
    choices TEXT NOT NULL,
    dates TEXT,
    timestamp BIGINT NOT NULL,
    UNIQUE (session_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_session ON votes(session_id);
`
