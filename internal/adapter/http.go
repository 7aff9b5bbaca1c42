package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/go-resty/resty/v2"
)

// tokenLeeway treats a token this close to expiry as already expired.
const tokenLeeway = 5 * time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Every response is logged at debug level without its body.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, userAgent string, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(userAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("server response")
			return nil
		})

	return &httpServerAdapter{client: client, now: time.Now, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.AuthToken, error) {
	return h.authenticate(ctx, "/auth/register", creds)
}

// Login implements [ServerAdapter]. POST /auth/login. The server throttles
// this endpoint; a 429 is returned as [ErrRateLimited].
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error) {
	return h.authenticate(ctx, "/auth/login", creds)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, creds models.Credentials) (models.AuthToken, error) {
	var token models.AuthToken

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds.Wire()).
		SetResult(&token).
		Post(path)
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("%s request: %w: %w", path, ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthToken{}, err
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return models.AuthToken{}, ErrEmptyToken
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

// Me implements [ServerAdapter]. GET /me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Account, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Account{}, err
	}

	var account models.Account
	resp, err := req.SetResult(&account).Get("/me")
	if err != nil {
		return models.Account{}, fmt.Errorf("me request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// ListEntries implements [ServerAdapter]. GET /passwords.
func (h *httpServerAdapter) ListEntries(ctx context.Context) ([]models.VaultEntry, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var items []entryResponse
	resp, err := req.SetResult(&items).Get("/passwords")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	entries := make([]models.VaultEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.toModel())
	}
	return entries, nil
}

// CreateEntry implements [ServerAdapter]. POST /passwords.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}

	var created entryResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(newEntryRequest(entry)).
		SetResult(&created).
		Post("/passwords")
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("create entry request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEntry{}, err
	}

	return created.toModel(), nil
}

// UpdateEntry implements [ServerAdapter]. PUT /passwords/{id}.
func (h *httpServerAdapter) UpdateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.VaultEntry{}, err
	}

	var updated entryResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(entry.ID, 10)).
		SetBody(newEntryRequest(entry)).
		SetResult(&updated).
		Put("/passwords/{id}")
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("update entry request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEntry{}, err
	}

	return updated.toModel(), nil
}

// DeleteEntry implements [ServerAdapter]. DELETE /passwords/{id}.
func (h *httpServerAdapter) DeleteEntry(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/passwords/{id}")
	if err != nil {
		return fmt.Errorf("delete entry request: %w: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// GeneratePassword implements [ServerAdapter]. POST /generate-password.
func (h *httpServerAdapter) GeneratePassword(ctx context.Context, settings models.GeneratorSettings) (models.GeneratedPassword, error) {
	var generated models.GeneratedPassword

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(settings).
		SetResult(&generated).
		Post("/generate-password")
	if err != nil {
		return models.GeneratedPassword{}, fmt.Errorf("generate password request: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GeneratedPassword{}, err
	}

	return generated, nil
}

// request starts a request carrying ctx and its trace id.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Request-ID", traceID)
	}
	return req
}

// authedRequest is request plus the bearer token. It fails without sending
// anything if no token is set or the token has already expired.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	if utils.IsTokenExpired(token, h.now(), tokenLeeway) {
		return nil, ErrTokenExpired
	}

	return h.request(ctx).SetAuthToken(token), nil
}
