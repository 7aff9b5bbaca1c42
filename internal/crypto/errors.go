// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidSalt is returned when the salt is shorter than [MinSaltSize].
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrEmptyPassword is returned when key derivation is asked to run on a
	// zero-length master password.
	ErrEmptyPassword = errors.New("empty master password")

	// ErrInvalidIterations is returned when the iteration count is below the
	// deriver's floor.
	ErrInvalidIterations = errors.New("invalid iteration count")

	// ErrMalformedInput is returned when transport-encoded text is not valid
	// base64 (bad characters or length).
	ErrMalformedInput = errors.New("malformed input")

	// ErrAuthenticationFailed is returned when an envelope does not
	// authenticate under the given key. It covers a wrong key, a tampered
	// ciphertext or nonce, and a truncated envelope alike.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKey is returned when a key is not [KeySize] bytes long.
	ErrInvalidKey = errors.New("invalid key size")

	// ErrEntropy is returned when the random source fails to produce a nonce.
	ErrEntropy = errors.New("random source failure")
)
