// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sessions coordinates the session lifecycle.

A Service sits between the HTTP layer and the store. It validates new
sessions, runs every vote through the validator, records it and then hands
the updated session to a Publisher so realtime viewers see it.

	svc := sessions.NewService(st, hub)
	session, err := svc.SubmitVote(ctx, sessions.VoteInput{...})

# Vote flow

 1. voter ID and name must be present
 2. load the session (store.ErrNotFound if missing or expired)
 3. validator.Validate
 4. store.AddVote; a concurrent duplicate surfaces as the same
    "already voted" rejection
 5. reload and publish

There is no in-process lock around this sequence. The store's uniqueness
constraint on (session, voter) decides races.

# Expiry

Sessions live for models.SessionTTL. Get removes an expired session lazily;
RunSweeper removes the rest on an interval.

# Errors

  - *ValidationError: bad create request
  - *validator.RejectionError: vote refused
  - store.ErrNotFound (wrapped): no such session
*/
package sessions
