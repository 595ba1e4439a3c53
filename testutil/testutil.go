// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/vote-service/auth"
	"github.com/danielhkuo/vote-service/cliparse"
	"github.com/danielhkuo/vote-service/db"
	"github.com/danielhkuo/vote-service/models"
	"github.com/danielhkuo/vote-service/store"
)

// SetupTestDB creates a fresh sqlite database file with the full schema.
// The file lives in t.TempDir() and is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), cliparse.SQLiteFileName)

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3001,
		DatabaseType:  cliparse.DatabaseSQLite,
		DatabaseURL:   "test.db",
		FrontendURL:   "http://localhost:5173",
		AdminKeySalt:  "test-admin-salt",
		SweepInterval: 6 * time.Hour,
	}
}

// Clock is a manually advanced clock for expiry tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// CreateTestSession inserts a session straight into the store with a random ID
func CreateTestSession(t *testing.T, st store.Store, options, dates []string, voteCount int, mode models.VoteMode) models.Session {
	t.Helper()

	id, err := auth.GenerateSessionID()
	if err != nil {
		t.Fatalf("Failed to generate session ID: %v", err)
	}
	session, err := st.Create(context.Background(), store.NewSession{
		ID:        id,
		Question:  "Where should we eat?",
		Options:   options,
		Dates:     dates,
		VoteCount: voteCount,
		VoteMode:  mode,
	})
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return session
}

// AddTestVote records a vote straight into the store
func AddTestVote(t *testing.T, st store.Store, sessionID, voterID, name string, choices, dates []string) {
	t.Helper()

	err := st.AddVote(context.Background(), sessionID, store.NewVote{
		VoterID: voterID,
		Name:    name,
		Choices: choices,
		Dates:   dates,
	})
	if err != nil {
		t.Fatalf("Failed to add test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
