// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, "test-agent", logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("server-key"))
	require.NoError(t, err)
	return token
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func detail(msg string) map[string]string {
	return map[string]string{"detail": msg}
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "account-pw", body["password"])

		writeJSON(t, w, http.StatusOK, map[string]string{
			"access_token":    "tok-1",
			"token_type":      "bearer",
			"encryption_salt": "c2FsdA",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "account-pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.AccessToken)
	assert.Equal(t, "c2FsdA", got.EncryptionSalt)
	assert.Equal(t, "tok-1", a.Token())
}

func TestRegister_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, detail("Email already registered"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email already registered")
	assert.Empty(t, a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":    "tok-2",
			"token_type":      "bearer",
			"encryption_salt": "c2FsdA",
			"kdf_iterations":  300000,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, 300000, got.KDFIterations)
	assert.Equal(t, "tok-2", a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
		wantMsg string
	}{
		{"invalid credentials", http.StatusBadRequest, detail("Invalid email or password"), ErrBadRequest, "Invalid email or password"},
		{"rate limited", http.StatusTooManyRequests, map[string]string{"error": "Rate limit exceeded: 5 per 1 minute"}, ErrRateLimited, "Rate limit exceeded"},
		{"validation", http.StatusUnprocessableEntity, map[string]any{"detail": []map[string]string{{"msg": "field required"}}}, ErrValidation, "field required"},
		{"bad gateway", http.StatusBadGateway, detail("upstream"), ErrBadGateway, "upstream"},
		{"internal", http.StatusInternalServerError, detail("boom"), ErrInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"token_type": "bearer"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Empty(t, a.Token())
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]string{
			"email":           "alice@example.com",
			"encryption_salt": "c2FsdA",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(token)

	got, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Account{Email: "alice@example.com", EncryptionSalt: "c2FsdA"}, got)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, detail("Could not validate credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque")

	_, err := a.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Token checks ─────────────────────────────────────────────────────────────

func TestAuthedRequest_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent without a token")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.ListEntries(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestAuthedRequest_ExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent with an expired token")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(signedToken(t, time.Now().Add(-time.Minute)))

	_, err := a.Me(context.Background())
	assert.ErrorIs(t, err, ErrTokenExpired)

	err = a.DeleteEntry(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRequest_ForwardsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-123", r.Header.Get("X-Request-ID"))
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque")

	_, err := a.ListEntries(utils.WithTraceID(context.Background(), "trace-123"))
	require.NoError(t, err)
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8000")
	a.SetToken("  tok \n")
	assert.Equal(t, "tok", a.Token())
}

// ── Entries ──────────────────────────────────────────────────────────────────

func TestListEntries_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/passwords", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "mail", "username": "alice", "encrypted_password": "Y3Q=", "iv": "bm9uY2U=",
			 "url": "https://mail.example.com", "notes": "", "created_at": "2026-01-02T03:04:05.123456",
			 "updated_at": "2026-01-02T03:04:05Z"}
		]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque")

	got, err := a.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	e := got[0]
	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, "mail", e.Title)
	assert.Equal(t, models.Envelope{Ciphertext: "Y3Q=", Nonce: "bm9uY2U="}, e.Envelope())
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 123456000, time.UTC), e.CreatedAt)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), e.UpdatedAt)
}

func TestListEntries_BadTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "created_at": "yesterday"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque")

	_, err := a.ListEntries(context.Background())
	require.Error(t, err)
}

func TestCreateEntry_Success(t *testing.T) {
	entry := models.VaultEntry{Title: "bank", Username: "alice", URL: "https://bank", Notes: "n"}
	entry.SetEnvelope(models.Envelope{Ciphertext: "Y3Q=", Nonce: "bm9uY2U="})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/passwords", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Y3Q=", body["encrypted_password"])
		assert.Equal(t, "bm9uY2U=", body["iv"])
		assert.NotContains(t, body, "id")
		assert.NotContains(t, body, "created_at")

		body["id"] = 7
		body["created_at"] = "2026-01-01T00:00:00"
		body["updated_at"] = "2026-01-01T00:00:00"
		writeJSON(t, w, http.StatusOK, body)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque")

	got, err := a.CreateEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, entry.Envelope(), got.Envelope())
	assert.Equal(t, "bank", got.Title)
}

func TestUpdateEntry_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/passwords/42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 42, "title": "renamed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque")

	got, err := a.UpdateEntry(context.Background(), models.VaultEntry{ID: 42, Title: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, detail("Password not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("opaque")

	_, err := a.UpdateEntry(context.Background(), models.VaultEntry{ID: 9})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Password not found")
}

func TestDeleteEntry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/passwords/3", r.URL.Path)
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "Password deleted successfully"})
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetToken("opaque")
		require.NoError(t, a.DeleteEntry(context.Background(), 3))
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusNotFound, detail("Password not found"))
		}))
		defer srv.Close()

		a := newTestAdapter(t, srv.URL)
		a.SetToken("opaque")
		assert.ErrorIs(t, a.DeleteEntry(context.Background(), 3), ErrNotFound)
	})
}

// ── Generator ────────────────────────────────────────────────────────────────

func TestGeneratePassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-password", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var settings models.GeneratorSettings
		require.NoError(t, json.NewDecoder(r.Body).Decode(&settings))
		if settings.Length > 128 {
			writeJSON(t, w, http.StatusBadRequest, detail("Length must be between 4 and 128"))
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"password": "Xy7!abcdEFGH1234"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	got, err := a.GeneratePassword(context.Background(), models.DefaultGeneratorSettings())
	require.NoError(t, err)
	assert.Equal(t, "Xy7!abcdEFGH1234", got.Password.Reveal())

	settings := models.DefaultGeneratorSettings()
	settings.Length = 500
	_, err = a.GeneratePassword(context.Background(), settings)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string detail", `{"detail":"Password not found"}`, "Password not found"},
		{"structured detail", `{"detail":[{"msg":"x"}]}`, `[{"msg":"x"}]`},
		{"limiter error", `{"error":"Rate limit exceeded"}`, "Rate limit exceeded"},
		{"plain text", "  oops \n", "oops"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail([]byte(tt.raw)))
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8000", "http://localhost:8000", false},
		{"no scheme", "localhost:8000", "http://localhost:8000", false},
		{"trailing slash", "https://vault.example.com/", "https://vault.example.com", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, "", nil)
	require.Error(t, err)
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.GeneratePassword(context.Background(), models.DefaultGeneratorSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachable)

	a.SetToken("opaque")
	_, err = a.ListEntries(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}
