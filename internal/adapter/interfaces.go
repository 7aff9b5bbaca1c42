// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The
// server's "detail" message is kept in the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. The server only ever sees entry envelopes; implementations never
// touch plaintext secrets.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Register and Login call it themselves.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken; the response also carries the new account's salt.
	Register(ctx context.Context, creds models.Credentials) (models.AuthToken, error)

	// Login authenticates with the account password. On success the returned
	// token is stored via SetToken; the response carries the account salt.
	Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error)

	// Me returns the account descriptor of the token owner, including the
	// encryption salt.
	Me(ctx context.Context) (models.Account, error)

	// ListEntries returns every entry of the account.
	ListEntries(ctx context.Context) ([]models.VaultEntry, error)

	// CreateEntry stores a new entry and returns it with the server id and
	// timestamps.
	CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)

	// UpdateEntry replaces the fields of entry.ID. Returns [ErrNotFound]
	// (wrapped) if the entry does not exist.
	UpdateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)

	// DeleteEntry removes the entry with the given id. Returns [ErrNotFound]
	// (wrapped) if the entry does not exist.
	DeleteEntry(ctx context.Context, id int64) error

	// GeneratePassword asks the server-side generator for a random password.
	// It needs no token.
	GeneratePassword(ctx context.Context, settings models.GeneratorSettings) (models.GeneratedPassword, error)
}
