// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vote service.

The vote service runs ad-hoc voting sessions: a question, two or more
options, optional candidate dates and a selection rule (exactly, at least
or at most N options). Sessions are shared by link, each voter votes once,
and everyone viewing a session sees new votes live. Sessions expire 30 days
after creation.

# Starting the Server

With defaults (SQLite file ./voting.db, port 3001):

	go run .

Or with flags:

	go run . -p 8080 -db-path /var/lib/vote-service -origin https://vote.example.com

PostgreSQL instead of SQLite:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

A .env file in the working directory is loaded first; real environment
variables win over it and flags win over both.

# Configuration

  - PORT (-p): server port (default: 3001)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): postgres DSN, or an explicit sqlite file path
  - DB_PATH (-db-path): directory for voting.db (default: .)
  - FRONTEND_URL (-origin): origin allowed for CORS and WebSocket
    (default: http://localhost:5173)
  - ADMIN_KEY_SALT (-admin-salt): secret for admin key HMAC; random per
    process when unset
  - SWEEP_INTERVAL (-sweep): expired session cleanup interval (default: 6h)

# Architecture

  - handlers: HTTP and WebSocket handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - sessions: session lifecycle and vote flow
  - validator: vote acceptance rules
  - results: option and date tallies
  - realtime: per-session fan-out over WebSocket
  - store: SQL and in-memory session storage
  - models: request/response and domain types
  - auth: session IDs, admin keys, voter ID checks
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
