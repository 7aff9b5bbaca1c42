package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned when a token carries no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenClaims are the claims the client reads from its bearer token.
type TokenClaims struct {
	// Subject is the "sub" claim; the account email for this server.
	Subject string
	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time
}

// ParseTokenClaims reads the claims of tokenString without verifying the
// signature. The client never holds the signing key; the server still
// validates every request. This is only used to fail fast on tokens that
// are already expired.
//
// Example usage:
//
//	claims, err := utils.ParseTokenClaims(token)
//	if err == nil && time.Now().After(claims.ExpiresAt) {
//	    // ask the user to log in again
//	}
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error occurred during getting expiration from token: %w", err)
	}
	if exp == nil {
		return TokenClaims{Subject: subject}, ErrNoExpiry
	}

	return TokenClaims{Subject: subject, ExpiresAt: exp.Time}, nil
}

// IsTokenExpired reports whether tokenString expires within leeway of now.
// Tokens that cannot be parsed, or carry no expiry, are reported as not
// expired and left for the server to judge.
func IsTokenExpired(tokenString string, now time.Time, leeway time.Duration) bool {
	claims, err := ParseTokenClaims(tokenString)
	if err != nil {
		return false
	}
	return !now.Add(leeway).Before(claims.ExpiresAt)
}
