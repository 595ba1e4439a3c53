// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: PostgreSQL DSN or sqlite file path
  - DBPath: Directory holding voting.db when DatabaseURL is empty (default: .)
  - FrontendURL: Allowed cross-origin caller (default: http://localhost:5173)
  - AdminKeySalt: Secret for admin key HMAC (random per process when empty)
  - SweepInterval: How often expired sessions are purged (default: 6h)

# Environment Variables

Environment variables are read first, then flags override them:

	PORT           → -p
	DATABASE_TYPE  → -t
	DATABASE_URL   → -d
	DB_PATH        → -db-path
	FRONTEND_URL   → -origin
	ADMIN_KEY_SALT → -admin-salt
	SWEEP_INTERVAL → -sweep

A .env file, when present, is loaded before parsing. It never overrides
variables already set in the process environment.

# Validation

ParseFlags returns an error when:

  - the port is outside 1-65535
  - DATABASE_TYPE is neither sqlite nor postgres
  - postgres is selected without DATABASE_URL
  - the sweep interval is not positive
*/
package cliparse
