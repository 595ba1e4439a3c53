// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validator decides whether a vote may be recorded.

Validate is pure: it looks only at the session (rules, options, dates and
existing votes) and the proposed ballot.

	err := validator.Validate(session, validator.Ballot{VoterID: id, Choices: c, Dates: d})

# Rules

Checked in order; the first failure wins:

 1. count: len(choices) against voteCount under voteMode
    (exactly: ==, minimum: >=, maximum: <=)
 2. every choice is a session option, none repeated
 3. if the session collects dates: at least one date, each a session date,
    none repeated
 4. the voter has not voted yet

# Errors

Failures are *RejectionError values carrying a message for the voter.
errors.Is matches the reason:

	if errors.Is(err, validator.ErrDuplicateVoter) { ... }
*/
package validator
