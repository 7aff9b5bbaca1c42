// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// sealedPrefix marks a plaintext-metadata field whose value was replaced by a
// sealed envelope because the field policy declared it sensitive.
const sealedPrefix = "enc:v1:"

// ErrNotSealed is returned by [ParseSealed] when the value does not carry the
// sealed-envelope prefix or is missing one of its halves.
var ErrNotSealed = errors.New("value is not a sealed envelope")

// Envelope is the persisted and transmitted form of one encrypted field.
//
// Both halves are transport encoded (standard base64). They are produced by a
// single encryption call and must always travel together: storage and
// transport treat the pair as opaque text and must never reorder, truncate or
// regenerate either half independently.
type Envelope struct {
	// Ciphertext is the AEAD output (ciphertext ‖ tag).
	Ciphertext string `json:"ciphertext"`

	// Nonce is the 96-bit value used once for this encryption.
	Nonce string `json:"nonce"`
}

// IsZero reports whether neither half of the envelope is set.
func (e Envelope) IsZero() bool {
	return e.Ciphertext == "" && e.Nonce == ""
}

// Seal packs the envelope into a single string so it can occupy a text field
// that was designed to hold plaintext (e.g. notes marked sensitive).
// The format is "enc:v1:<ciphertext>:<nonce>"; the base64 alphabet never
// contains ':' so the split is unambiguous.
func (e Envelope) Seal() string {
	return sealedPrefix + e.Ciphertext + ":" + e.Nonce
}

// IsSealed reports whether s looks like the output of [Envelope.Seal].
func IsSealed(s string) bool {
	return strings.HasPrefix(s, sealedPrefix)
}

// ParseSealed reverses [Envelope.Seal].
func ParseSealed(s string) (Envelope, error) {
	if !IsSealed(s) {
		return Envelope{}, ErrNotSealed
	}

	ciphertext, nonce, ok := strings.Cut(strings.TrimPrefix(s, sealedPrefix), ":")
	if !ok || ciphertext == "" || nonce == "" {
		return Envelope{}, ErrNotSealed
	}

	return Envelope{Ciphertext: ciphertext, Nonce: nonce}, nil
}
