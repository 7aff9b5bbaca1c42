package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	require.NoError(t, err)
	return token
}

func TestParseTokenClaims_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestParseTokenClaims_NoExpiry(t *testing.T) {
	token := signTestToken(t, jwt.RegisteredClaims{Subject: "bob@example.com"})

	claims, err := ParseTokenClaims(token)
	assert.ErrorIs(t, err, ErrNoExpiry)
	assert.Equal(t, "bob@example.com", claims.Subject)
}

func TestParseTokenClaims_Malformed(t *testing.T) {
	_, err := ParseTokenClaims("not.a.jwt")
	require.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		token  string
		leeway time.Duration
		want   bool
	}{
		{
			name:  "valid",
			token: signTestToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}),
			want:  false,
		},
		{
			name:  "expired",
			token: signTestToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}),
			want:  true,
		},
		{
			name:   "expires within leeway",
			token:  signTestToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Second))}),
			leeway: 30 * time.Second,
			want:   true,
		},
		{
			name:  "no expiry",
			token: signTestToken(t, jwt.RegisteredClaims{Subject: "x"}),
			want:  false,
		},
		{
			name:  "garbage",
			token: "garbage",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTokenExpired(tt.token, now, tt.leeway))
		})
	}
}
