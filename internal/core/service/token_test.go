package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orderdesk/order-service/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "64f0c2a9e4b0f1a2b3c4d5e6",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := testUser()

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != user.Username {
		t.Fatalf("subject = %q, want %q", claims.Subject, user.Username)
	}
	if claims.UserID != user.ID {
		t.Fatalf("user id = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Role != user.Role {
		t.Fatalf("role = %q, want %q", claims.Role, user.Role)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	// TTL <= 0 falls back to the default, so build an expired token directly.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     "alice",
		"user_id": "64f0c2a9e4b0f1a2b3c4d5e6",
		"role":    domain.RoleUser,
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issued, err := NewTokenService("secret-a", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).Verify(issued); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenService_WrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":     "alice",
		"user_id": "64f0c2a9e4b0f1a2b3c4d5e6",
		"role":    domain.RoleAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.TTL() != defaultTokenTTL {
		t.Fatalf("TTL = %v, want %v", svc.TTL(), defaultTokenTTL)
	}
}
