package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plannr/todo-api/internal/core/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	user := &domain.User{ID: 42, Email: "a@a.com", Role: domain.RoleAdmin}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, err := svc.Parse(strings.TrimPrefix(token, BearerPrefix))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := domain.Identity{UserID: 42, Email: "a@a.com", Role: domain.RoleAdmin}
	if identity != want {
		t.Fatalf("expected %+v, got %+v", want, identity)
	}
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, _ := NewJWTService("secret", time.Hour).Issue(&domain.User{ID: 1, Email: "a@a.com", Role: domain.RoleUser})

	_, err := NewJWTService("other", time.Hour).Parse(strings.TrimPrefix(token, BearerPrefix))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("secret", time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, _ := svc.Issue(&domain.User{ID: 1, Email: "a@a.com", Role: domain.RoleUser})

	svc.now = time.Now
	if _, err := svc.Parse(strings.TrimPrefix(token, BearerPrefix)); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTService_RejectsOtherAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1", "role": "ADMIN"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewJWTService("secret", time.Hour).Parse(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1", "role": "ROOT"})
	signed, _ := token.SignedString([]byte("secret"))

	if _, err := NewJWTService("secret", time.Hour).Parse(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
