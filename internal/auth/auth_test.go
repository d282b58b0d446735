package auth

import (
	"testing"
	"time"
)

const secret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("firebase-uid-1", secret)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "firebase-uid-1" {
		t.Errorf("uid mismatch: %s", claims.UserID)
	}

	// expiry is ~15 min out
	diff := time.Until(claims.ExpiresAt.Time)
	if diff < 14*time.Minute || diff > 16*time.Minute {
		t.Errorf("expected ~15min expiry, got %v", diff)
	}
}

func TestParseTokenRejects(t *testing.T) {
	tok, _ := MakeToken("uid", secret)

	if _, err := ParseToken(tok, "wrong-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
	if _, err := ParseToken("not.a.token", secret); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestVerifier(t *testing.T) {
	v := NewJWTVerifier(secret)

	tok, _ := MakeToken("subject-42", secret)
	uid, err := v.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if uid != "subject-42" {
		t.Errorf("expected subject-42, got %s", uid)
	}

	if _, err := v.Verify(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}
