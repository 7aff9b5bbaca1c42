// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants.
//
// The Msg* constants fall into two groups: the "detail" strings the vault
// server puts into its error bodies, which the service layer matches to
// pick a sentinel error, and the messages the terminal UI shows the user.
// Keeping them in one place ensures consistent wording.
package app

// Server error details.
const (
	// MsgServerInvalidCredentials is the server detail for a failed login.
	MsgServerInvalidCredentials = "Invalid email or password"

	// MsgServerEmailRegistered is the server detail for a duplicate register.
	MsgServerEmailRegistered = "Email already registered"

	// MsgServerEntryNotFound is the server detail for an unknown entry id.
	MsgServerEntryNotFound = "Password not found"

	// MsgServerInvalidToken is the server detail for a rejected bearer token.
	MsgServerInvalidToken = "Could not validate credentials"

	// MsgServerGeneratorLength is the server detail for an out of range
	// generator length.
	MsgServerGeneratorLength = "Length must be between 4 and 128"

	// MsgServerGeneratorCharset is the server detail for a generator request
	// with every character class disabled.
	MsgServerGeneratorCharset = "At least one character must be selected"
)

// User-facing messages.
const (
	// MsgWrongMasterPassword is shown when the first decrypt after unlock
	// does not authenticate.
	MsgWrongMasterPassword = "wrong master password"

	// MsgVaultLocked is shown when an action needs the key and the vault is
	// locked.
	MsgVaultLocked = "vault is locked"

	// MsgSessionExpired is shown when the bearer token expired and the user
	// has to log in again.
	MsgSessionExpired = "session expired, please log in again"

	// MsgInvalidCredentials is shown for a failed login.
	MsgInvalidCredentials = "invalid email or password"

	// MsgEmailTaken is shown when registering an email that already exists.
	MsgEmailTaken = "email already registered"

	// MsgServerUnavailable is shown when the server cannot be reached and no
	// cached data is available.
	MsgServerUnavailable = "server unavailable"

	// MsgOfflineMode is shown when the entry list comes from the local cache.
	MsgOfflineMode = "offline: showing cached entries"

	// MsgRateLimited is shown when the server throttles login attempts.
	MsgRateLimited = "too many attempts, try again in a minute"

	// MsgCopied is shown after a secret was copied to the clipboard.
	MsgCopied = "copied to clipboard"
)
