// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Deriver is the private implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	// minIterations is the lowest accepted work factor. Production code
	// keeps [MinIterations]; tests lower it to keep runs fast.
	minIterations int
}

// DeriverOption configures [NewKeyDeriver].
type DeriverOption func(*pbkdf2Deriver)

// WithMinIterations overrides the iteration floor. Intended for tests that
// run derivation with reduced work factors.
func WithMinIterations(n int) DeriverOption {
	return func(d *pbkdf2Deriver) {
		d.minIterations = n
	}
}

// NewKeyDeriver constructs a [KeyDeriver] backed by PBKDF2 with HMAC-SHA-256
// and a 32-byte output. The iteration floor defaults to [MinIterations].
func NewKeyDeriver(opts ...DeriverOption) KeyDeriver {
	d := &pbkdf2Deriver{minIterations: MinIterations}
	for _, opt := range opts {
		opt(d)
	}
	if d.minIterations < 1 {
		d.minIterations = 1
	}
	return d
}

// Derive implements [KeyDeriver]. The password bytes are copied into a
// scratch buffer that is wiped before returning.
func (d *pbkdf2Deriver) Derive(password string, salt []byte, iterations int) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrInvalidSalt, len(salt), MinSaltSize)
	}
	if iterations < d.minIterations {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrInvalidIterations, iterations, d.minIterations)
	}

	pw := []byte(password)
	defer Wipe(pw)

	return pbkdf2.Key(pw, salt, iterations, KeySize, sha256.New), nil
}
