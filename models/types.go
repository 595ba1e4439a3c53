package models

import "time"

// SessionTTL is how long a session stays open after creation. It is never renewed.
const SessionTTL = 30 * 24 * time.Hour

// DateLayout is the calendar date format used for session and vote dates.
const DateLayout = "2006-01-02"

// VoteMode governs how VoteCount constrains the number of options a voter picks.
type VoteMode string

const (
	VoteModeExactly VoteMode = "exactly"
	VoteModeMinimum VoteMode = "minimum"
	VoteModeMaximum VoteMode = "maximum"
)

// Valid reports whether m is one of the known modes.
func (m VoteMode) Valid() bool {
	switch m {
	case VoteModeExactly, VoteModeMinimum, VoteModeMaximum:
		return true
	}
	return false
}

// Request types

type CreateSessionRequest struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	Dates     []string `json:"dates,omitempty"`
	VoteCount int      `json:"voteCount"`
	VoteMode  VoteMode `json:"voteMode"`
}

// VoteMode and VoteCount are sent by the client for display purposes only;
// the stored session rule is what gets enforced.
type SubmitVoteRequest struct {
	VoterName string   `json:"voterName"`
	Choices   []string `json:"choices"`
	Dates     []string `json:"dates,omitempty"`
	VoterID   string   `json:"voterId"`
	VoteMode  VoteMode `json:"voteMode,omitempty"`
	VoteCount int      `json:"voteCount,omitempty"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string  `json:"sessionId"`
	Session   Session `json:"session"`
	AdminKey  string  `json:"adminKey,omitempty"`
}

// Domain types

// Session is one voting round. Timestamps are Unix milliseconds.
type Session struct {
	ID        string          `json:"id"`
	Question  string          `json:"question"`
	Options   []string        `json:"options"`
	Dates     []string        `json:"dates"` // nil when the session does not collect dates
	VoteCount int             `json:"voteCount"`
	VoteMode  VoteMode        `json:"voteMode"`
	CreatedAt int64           `json:"createdAt"`
	ExpiresAt int64           `json:"expiresAt"`
	Votes     map[string]Vote `json:"votes"` // keyed by voter ID
}

// HasDates reports whether the session collects date availability.
func (s Session) HasDates() bool {
	return s.Dates != nil
}

// ExpiredAt reports whether the session is no longer usable at t.
func (s Session) ExpiredAt(t time.Time) bool {
	return t.UnixMilli() >= s.ExpiresAt
}

type Vote struct {
	Name      string   `json:"name"`
	Choices   []string `json:"choices"`
	Dates     []string `json:"dates"`
	Timestamp int64    `json:"timestamp"`
}

// Results types

type OptionTally struct {
	Option     string `json:"option"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type DateTally struct {
	Date       string `json:"date"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type Results struct {
	SessionID   string        `json:"sessionId"`
	TotalVoters int           `json:"totalVoters"`
	Options     []OptionTally `json:"options"`
	Dates       []DateTally   `json:"dates"` // nil when the session does not collect dates
}

// Realtime event types

const (
	EventJoinSession   = "joinSession"
	EventLeaveSession  = "leaveSession"
	EventSessionUpdate = "sessionUpdate"
	EventError         = "error"
)

// ClientMessage is sent by a realtime client over the WebSocket.
type ClientMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
}

// ServerEvent is pushed by the server to realtime clients.
type ServerEvent struct {
	Type    string   `json:"type"`
	Session *Session `json:"session,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
