// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validator

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/vote-service/models"
)

// Rejection reasons. A *RejectionError unwraps to exactly one of these.
var (
	ErrCountRule      = errors.New("selection count violates vote rule")
	ErrUnknownChoice  = errors.New("choice is not a session option")
	ErrDatesRequired  = errors.New("dates required")
	ErrUnknownDate    = errors.New("date is not a session date")
	ErrDuplicateVoter = errors.New("voter already voted")
)

// DuplicateVoterMessage is shown when a voter tries to vote twice.
const DuplicateVoterMessage = "Looks like you already voted"

// RejectionError is a user-facing refusal of a vote.
type RejectionError struct {
	Reason  error
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

func (e *RejectionError) Unwrap() error { return e.Reason }

func reject(reason error, format string, args ...any) *RejectionError {
	return &RejectionError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// DuplicateVoter returns the rejection for a voter who already voted.
func DuplicateVoter() *RejectionError {
	return &RejectionError{Reason: ErrDuplicateVoter, Message: DuplicateVoterMessage}
}

// Ballot is a proposed vote.
type Ballot struct {
	VoterID string
	Choices []string
	Dates   []string
}

// Validate decides whether ballot may be recorded against session. The
// session is assumed to exist and be unexpired. Rules are checked in order
// and the first failure is returned.
func Validate(session models.Session, ballot Ballot) error {
	if err := checkCount(session, len(ballot.Choices)); err != nil {
		return err
	}

	if err := checkMembership(ballot.Choices, session.Options, ErrUnknownChoice, "option"); err != nil {
		return err
	}

	if session.HasDates() {
		if len(ballot.Dates) == 0 {
			return reject(ErrDatesRequired, "Must select at least one date")
		}
		if err := checkMembership(ballot.Dates, session.Dates, ErrUnknownDate, "date"); err != nil {
			return err
		}
	}

	if _, voted := session.Votes[ballot.VoterID]; voted {
		return DuplicateVoter()
	}

	return nil
}

func checkCount(session models.Session, n int) error {
	k := session.VoteCount
	switch session.VoteMode {
	case models.VoteModeExactly:
		if n != k {
			return reject(ErrCountRule, "Must select exactly %d option(s)", k)
		}
	case models.VoteModeMinimum:
		if n < k {
			return reject(ErrCountRule, "Must select at least %d option(s)", k)
		}
	case models.VoteModeMaximum:
		if n > k {
			return reject(ErrCountRule, "Can only select up to %d option(s)", k)
		}
	default:
		return reject(ErrCountRule, "Session has an unknown vote mode %q", session.VoteMode)
	}
	return nil
}

// checkMembership requires every picked value to be allowed and picked once.
func checkMembership(picked, allowed []string, reason error, noun string) error {
	valid := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		valid[a] = true
	}

	seen := make(map[string]bool, len(picked))
	for _, p := range picked {
		if !valid[p] {
			return reject(reason, "Invalid %s: %s", noun, p)
		}
		if seen[p] {
			return reject(reason, "The %s %s was selected more than once", noun, p)
		}
		seen[p] = true
	}
	return nil
}
