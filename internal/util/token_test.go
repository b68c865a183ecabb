package util

import (
	"encoding/hex"
	"testing"
)

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Fatalf("expected token to be valid hex: %v", err)
	}
}

func TestGenerateResetTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateResetToken()
		if err != nil {
			t.Fatalf("GenerateResetToken returned error: %v", err)
		}
		if seen[token] {
			t.Fatalf("generated a duplicate token")
		}
		seen[token] = true
	}
}
