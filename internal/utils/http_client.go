package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent when NewHTTPClient is given an empty agent.
const DefaultUserAgent = "go-pass-vault"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client that speaks JSON and identifies
// itself with userAgent.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient("go-pass-vault/1.0.0")
//	resp, err := client.R().Get("https://vault.example.com/me")
func NewHTTPClient(userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
