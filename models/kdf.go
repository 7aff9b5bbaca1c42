// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KDFParams are the per-account inputs of key derivation other than the
// master password itself.
//
// The iteration count is data, not a constant: it is pinned to the account
// so that changing the client default never makes existing envelopes
// undecryptable.
type KDFParams struct {
	// Salt is the transport-encoded per-account salt.
	Salt string `json:"salt"`

	// Iterations is the PBKDF2 work factor. Zero means "use the default".
	Iterations int `json:"iterations"`
}
