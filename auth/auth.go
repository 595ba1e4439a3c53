// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// SessionIDLength is the number of base36 characters in a session ID.
const SessionIDLength = 7

// MaxVoterIDLength bounds the client-supplied voter identifier.
const MaxVoterIDLength = 128

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidVoterID  = errors.New("invalid voter id")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionID creates a short, URL-friendly session identifier
// (lowercase base36). Collisions are possible and must be handled by the caller.
func GenerateSessionID() (string, error) {
	const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

	// 252 is the largest multiple of 36 that fits in a byte; rejecting bytes
	// above it keeps the distribution uniform.
	out := make([]byte, SessionIDLength)
	b := make([]byte, 1)
	for i := 0; i < SessionIDLength; {
		if _, err := rand.Read(b); err != nil {
			return "", fmt.Errorf("failed to generate session ID: %w", err)
		}
		if b[0] >= 252 {
			continue
		}
		out[i] = base36Chars[b[0]%36]
		i++
	}
	return string(out), nil
}

// GenerateSalt creates a random secret suitable for GenerateAdminKey.
func GenerateSalt() (string, error) {
	return GenerateID(32)
}

// GenerateAdminKey creates an HMAC-based admin key for a session
// This is deterministic and verifiable
func GenerateAdminKey(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the session
func ValidateAdminKey(sessionID, adminKey, salt string) error {
	if adminKey == "" {
		return ErrInvalidAdminKey
	}
	expected := GenerateAdminKey(sessionID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ValidateVoterID checks the shape of a client-generated voter identifier.
// It does not, and cannot, prove the caller owns the identifier.
func ValidateVoterID(voterID string) error {
	if strings.TrimSpace(voterID) == "" || len(voterID) > MaxVoterIDLength {
		return ErrInvalidVoterID
	}
	for _, r := range voterID {
		if unicode.IsControl(r) {
			return ErrInvalidVoterID
		}
	}
	return nil
}
