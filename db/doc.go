// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening

Open connects using the configured backend, pings it and creates the schema:

	conn, err := db.Open(cfg)

Two backends are supported:

  - sqlite (default): embedded, pure Go (modernc.org/sqlite). Foreign keys,
    a busy timeout and WAL journaling are enabled through DSN pragmas.
  - postgres: github.com/lib/pq, for deployments with an external database.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - sessions: question, JSON-encoded options/dates, vote rule, created/expires timestamps
  - votes: one row per (session_id, voter_id), JSON-encoded choices/dates

# Relationships

	sessions 1──* votes

votes.session_id uses ON DELETE CASCADE. UNIQUE (session_id, voter_id) is
the only mechanism that prevents a voter from voting twice.

# Indexes

  - sessions.expires_at (expiry sweep)
  - votes.session_id
*/
package db
