// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// aesGCMCipher is the private implementation of [EnvelopeCipher].
type aesGCMCipher struct {
	// random is the nonce source. crypto/rand.Reader outside of tests.
	random io.Reader
}

// CipherOption configures [NewEnvelopeCipher].
type CipherOption func(*aesGCMCipher)

// WithRandom replaces the nonce source. Tests use it to simulate entropy
// failures; production code must keep the default CSPRNG.
func WithRandom(r io.Reader) CipherOption {
	return func(c *aesGCMCipher) {
		c.random = r
	}
}

// NewEnvelopeCipher constructs an AES-256-GCM [EnvelopeCipher] that draws
// nonces from crypto/rand.
func NewEnvelopeCipher(opts ...CipherOption) EnvelopeCipher {
	c := &aesGCMCipher{random: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt implements [EnvelopeCipher]. A fresh 12-byte nonce is read from
// the random source on every call; it is returned next to the ciphertext
// and never reused by this package.
func (c *aesGCMCipher) Encrypt(key, plaintext []byte) (models.Envelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.Envelope{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return models.Envelope{
		Ciphertext: Encode(ciphertext),
		Nonce:      Encode(nonce),
	}, nil
}

// Decrypt implements [EnvelopeCipher]. Every failure past transport
// decoding collapses into [ErrAuthenticationFailed] without the underlying
// cipher error attached.
func (c *aesGCMCipher) Decrypt(key []byte, env models.Envelope) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ciphertext, err := Decode(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}
	nonce, err := Decode(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}

	// gcm.Open panics on a nonce of the wrong size.
	if len(nonce) != NonceSize || len(ciphertext) < TagSize {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKey, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
