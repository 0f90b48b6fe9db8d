package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := GenerateJWT(secret, userID, "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "ana@example.com")
	}
	if claims.Issuer != "encorefund" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "encorefund")
	}
}

func TestJWTNonPositiveExpirationDefaults(t *testing.T) {
	// expiration <= 0 falls back to 24h, so the token still verifies
	token, err := GenerateJWT("test-secret", uuid.New(), "ana@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT("test-secret", token); err != nil {
		t.Fatalf("token with default expiry should verify: %v", err)
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("test-secret", uuid.New(), "ana@example.com", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ParseJWT("test-secret", token); err == nil {
		t.Error("expected expired-token error, got nil")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected signature error, got nil")
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("test-secret", "not.a.token"); err == nil {
		t.Error("expected parse error, got nil")
	}
}
