// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and admin key utilities.

# Session IDs

Session IDs are short random base36 strings shared in links:

	id, err := auth.GenerateSessionID() // e.g. "k3x9q2a"

Seven characters leave room for collisions, so the session service retries
creation when the store reports a duplicate ID.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(sessionID, salt)
	err := auth.ValidateAdminKey(sessionID, adminKey, salt)

The key is returned once, when the session is created, and authorizes
explicit deletion. It is never stored; validation recomputes it from the
session ID and the process salt.

# Voter IDs

Voter IDs are generated by the client and kept in browser storage. The
server only checks their shape:

	err := auth.ValidateVoterID(voterID)

Anyone presenting a voter ID is trusted as that voter. One vote per voter
therefore guards against accidental double submission, not against a
client that mints a fresh ID for every vote.
*/
package auth
