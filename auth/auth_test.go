// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"32 bytes", 32, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}
}

func TestGenerateSessionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, err := GenerateSessionID()
		if err != nil {
			t.Fatalf("GenerateSessionID() error = %v", err)
		}
		if len(id) != SessionIDLength {
			t.Fatalf("GenerateSessionID() length = %d, want %d", len(id), SessionIDLength)
		}
		for _, c := range id {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')) {
				t.Fatalf("GenerateSessionID() contains invalid base36 char: %c", c)
			}
		}
		seen[id] = true
	}

	// 36^7 possible IDs; 200 draws colliding more than once would be suspicious
	if len(seen) < 199 {
		t.Errorf("GenerateSessionID() produced too many duplicates: %d unique of 200", len(seen))
	}
}

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		salt      string
	}{
		{"standard", "abc1234", "secret-salt"},
		{"empty session id", "", "salt"},
		{"empty salt", "xyz9876", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.sessionID, tt.salt)
			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			if key2 := GenerateAdminKey(tt.sessionID, tt.salt); key != key2 {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GenerateAdminKey() is not URL-safe: %s", key)
			}

			if tt.sessionID != "" && tt.salt != "" {
				if GenerateAdminKey(tt.sessionID+"x", tt.salt) == key {
					t.Error("GenerateAdminKey() produced same key for different session IDs")
				}
				if GenerateAdminKey(tt.sessionID, tt.salt+"x") == key {
					t.Error("GenerateAdminKey() produced same key for different salts")
				}
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	sessionID := "abc1234"
	validKey := GenerateAdminKey(sessionID, salt)

	tests := []struct {
		name      string
		sessionID string
		key       string
		wantErr   bool
	}{
		{"valid key", sessionID, validKey, false},
		{"wrong key", sessionID, "wrong-key", true},
		{"empty key", sessionID, "", true},
		{"key for other session", "zzz0000", validKey, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.sessionID, tt.key, salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAdminKey) {
				t.Errorf("ValidateAdminKey() error = %v, want ErrInvalidAdminKey", err)
			}
		})
	}
}

func TestGenerateSalt(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}
	s2, _ := GenerateSalt()
	if s1 == s2 {
		t.Error("GenerateSalt() produced duplicate salts (extremely unlikely)")
	}
	if len(s1) != 64 {
		t.Errorf("GenerateSalt() length = %d, want 64", len(s1))
	}
}

func TestValidateVoterID(t *testing.T) {
	tests := []struct {
		name    string
		voterID string
		wantErr bool
	}{
		{"typical client id", "voter_1699999999_x8k2m", false},
		{"uuid", "2f1d3c4e-8a7b-4c6d-9e0f-112233445566", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", MaxVoterIDLength+1), true},
		{"max length", strings.Repeat("a", MaxVoterIDLength), false},
		{"control character", "voter\x00id", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoterID(tt.voterID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVoterID(%q) error = %v, wantErr %v", tt.voterID, err, tt.wantErr)
			}
		})
	}
}

func BenchmarkGenerateSessionID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateSessionID()
	}
}

func BenchmarkGenerateAdminKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateAdminKey("abc1234", "salt")
	}
}
