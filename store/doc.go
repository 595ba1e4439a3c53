// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the durable record of sessions and votes.

# Backends

Store is implemented twice:

  - SQLStore: database/sql over sqlite (modernc.org/sqlite) or postgres (lib/pq)
  - MemoryStore: mutex-guarded maps, for tests and throwaway instances

	st := store.NewSQLStore(conn, store.DialectSQLite)
	st := store.NewMemoryStore(store.WithClock(clock.Now))

# Expiry

Sessions expire 30 days after creation. Get treats an expired session as
missing and deletes it on the spot; SweepExpired removes the rest in bulk.

# One Vote Per Voter

AddVote relies on UNIQUE (session_id, voter_id). A second insert for the
same voter, however close in time, fails with ErrDuplicateVoter. HasVoted
is only a pre-check for friendlier errors.

# Encoding

Option, date and choice lists are stored as JSON text. Order and repeated
entries are preserved; a nil list is stored as NULL.
*/
package store
