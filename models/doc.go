// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateSessionRequest: question, options, dates, voteCount, voteMode
  - SubmitVoteRequest: voterName, choices, dates, voterId

# Response Types

Types for JSON responses:

  - CreateSessionResponse: sessionId, session, adminKey
  - Results: totalVoters, options, dates
  - ErrorResponse: error

# Domain Types

  - Session: question, options, optional dates, vote rule, expiry, votes by voter ID
  - Vote: one voter's name, choices, dates and insertion timestamp
  - OptionTally, DateTally: aggregated counts and percentages

Timestamps are Unix milliseconds so they survive JSON and both SQL
backends without conversion.

# Vote Modes

	VoteModeExactly = "exactly" // pick exactly voteCount options
	VoteModeMinimum = "minimum" // pick at least voteCount options
	VoteModeMaximum = "maximum" // pick at most voteCount options

# Realtime Events

	EventJoinSession   = "joinSession"   // client -> server
	EventLeaveSession  = "leaveSession"  // client -> server
	EventSessionUpdate = "sessionUpdate" // server -> client, once per accepted vote
	EventError         = "error"         // server -> client
*/
package models
