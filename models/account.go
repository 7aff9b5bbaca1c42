// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is what the user types into the login/register form. The
// account password authenticates the user to the server and is unrelated
// to the vault key; it is sent once and never stored.
type Credentials struct {
	// Email is the unique account identifier.
	Email string `json:"email"`

	// Password is the account password. Redacted in logs.
	Password Secret `json:"-"`
}

// credentialsWire is the request body the server expects.
type credentialsWire struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Wire returns the request body for /auth/login and /auth/register.
// It is the only place the account password is rendered as plain text.
func (c Credentials) Wire() any {
	return credentialsWire{Email: c.Email, Password: c.Password.Reveal()}
}

// AuthToken is the server response to a successful login or registration.
type AuthToken struct {
	// AccessToken is the bearer credential for subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// EncryptionSalt is the per-account key derivation salt, transport encoded.
	EncryptionSalt string `json:"encryption_salt"`

	// KDFIterations is the account-pinned iteration count if the server
	// tracks one; zero otherwise.
	KDFIterations int `json:"kdf_iterations,omitempty"`
}

// Account is the account descriptor returned by GET /me and cached locally.
type Account struct {
	// Email is the unique account identifier.
	Email string `json:"email"`

	// EncryptionSalt is the per-account key derivation salt, transport encoded.
	EncryptionSalt string `json:"encryption_salt"`

	// KDFIterations is the iteration count pinned to this account. Zero means
	// "not known yet" and is resolved by the client.
	KDFIterations int `json:"kdf_iterations,omitempty"`

	// UpdatedAt is set by the local cache when the descriptor is saved.
	UpdatedAt time.Time `json:"-"`
}

// KDFParams returns the derivation parameters carried by the account.
func (a Account) KDFParams() KDFParams {
	return KDFParams{Salt: a.EncryptionSalt, Iterations: a.KDFIterations}
}

// TableName returns the name of the local cache table for accounts.
func (a Account) TableName() string {
	return "accounts"
}
