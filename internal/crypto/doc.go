// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto is the client-side cryptographic engine of the vault.
//
// It knows nothing about the network, the database or users. Its only job is
// to turn a master password into a key and to seal/open single field values
// with that key:
//
//	key      = Derive(masterPassword, salt, iterations)   PBKDF2-HMAC-SHA256, 32 bytes
//	envelope = Encrypt(key, plaintext)                    AES-256-GCM, fresh random 96-bit nonce
//	plain    = Decrypt(key, envelope)                     verifies the GCM tag
//
// Both halves of an envelope are transport encoded with [Encode] (standard
// base64). A decryption that fails tag verification always reports
// [ErrAuthenticationFailed]; a wrong key and a tampered envelope are
// indistinguishable.
//
// Nonces are drawn from crypto/rand on every call. The engine keeps no state
// between calls.
package crypto
