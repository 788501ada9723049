package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", 15)

	raw, err := tokens.Issue(Identity{UserID: 42, IsAdmin: true})
	if err != nil {
		t.Fatalf("issue: unexpected error: %v", err)
	}
	if raw == "" {
		t.Fatal("issue: expected a token string")
	}

	id, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("verify: unexpected error: %v", err)
	}
	if id.UserID != 42 {
		t.Fatalf("verify: expected user id 42, got %d", id.UserID)
	}
	if !id.IsAdmin {
		t.Fatal("verify: expected admin identity")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", 15)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	tokens := NewTokens("test-secret", 15)

	raw, err := tokens.Issue(Identity{UserID: 7})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part JWT, got %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := tokens.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokens("secret-one", 15)
	verifier := NewTokens("secret-two", 15)

	raw, err := issuer.Issue(Identity{UserID: 7})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken across secrets, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens := NewTokens("test-secret", -5) // already expired at issue time

	raw, err := tokens.Issue(Identity{UserID: 7})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	// expiry must look exactly like any other invalid token
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22", 4) // low cost keeps the test fast
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "hunter22") {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword(hash, "hunter23") {
		t.Fatal("expected mismatched password to fail")
	}
}
