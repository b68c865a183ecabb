package util

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	ttl := time.Minute
	manager := NewJWTManager("top-secret", ttl)

	userID := uuid.New()
	token, expiresAt, err := manager.Generate(userID)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}

	parsed, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed != userID {
		t.Fatalf("expected user id %s, got %s", userID, parsed)
	}
}

func TestJWTManagerParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", time.Millisecond)
	token, _, err := manager.Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	if _, err := manager.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTManagerParseTamperedToken(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute)
	token, _, err := manager.Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := manager.Parse(string(tampered)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestJWTManagerParseWrongKey(t *testing.T) {
	token, _, err := NewJWTManager("key-one", time.Minute).Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := NewJWTManager("key-two", time.Minute).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestJWTManagerParseGarbage(t *testing.T) {
	manager := NewJWTManager("secret", time.Minute)
	for _, input := range []string{"", "abc", "a.b.c"} {
		if _, err := manager.Parse(input); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for input %q, got %v", input, err)
		}
	}
}
