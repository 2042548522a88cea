package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestTokenExpiresAt_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, &jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiresAt(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestTokenExpiresAt_NoExpiry(t *testing.T) {
	token := signToken(t, &jwt.RegisteredClaims{Subject: "user"})

	_, err := TokenExpiresAt(token)
	if !errors.Is(err, ErrNoExpiry) {
		t.Errorf("expected ErrNoExpiry, got %v", err)
	}
}

func TestTokenExpiresAt_Malformed(t *testing.T) {
	if _, err := TokenExpiresAt("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	expired := signToken(t, &jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	valid := signToken(t, &jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))})

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired jwt", expired, true},
		{"valid jwt", valid, false},
		{"opaque token", "opaque-access-token", false},
		{"empty token", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenExpired(tt.token, now); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
