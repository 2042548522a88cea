package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiresAt for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiresAt reads the exp claim of a JWT access token without verifying
// its signature. The signing key belongs to the mail server; the client only
// needs the expiry to skip round trips that would be rejected anyway.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing access token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenExpired reports whether tokenString is a JWT whose exp claim lies
// before now. Opaque (non-JWT) tokens and tokens without exp are never
// considered expired.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
