// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Session is the owned, lockable key slot of the vault.
type Session struct {
	mu  sync.RWMutex
	key []byte

	// lastUsed is the unix-nano time of the last unlock or field operation.
	lastUsed atomic.Int64

	iterations int
	deriver    crypto.KeyDeriver
	cipher     crypto.EnvelopeCipher
	now        func() time.Time

	logger *logger.Logger
}

// Option configures [New].
type Option func(*Session)

// WithIterations sets the iteration count used by [Session.Unlock] and by
// [Session.UnlockWithParams] when the account has no pinned value.
func WithIterations(n int) Option {
	return func(s *Session) {
		s.iterations = n
	}
}

// WithDeriver replaces the key derivation function.
func WithDeriver(d crypto.KeyDeriver) Option {
	return func(s *Session) {
		s.deriver = d
	}
}

// WithCipher replaces the envelope cipher.
func WithCipher(c crypto.EnvelopeCipher) Option {
	return func(s *Session) {
		s.cipher = c
	}
}

// WithClock replaces time.Now, used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New returns a Locked session backed by PBKDF2 and AES-256-GCM.
func New(log *logger.Logger, opts ...Option) *Session {
	s := &Session{
		iterations: crypto.DefaultIterations,
		deriver:    crypto.NewKeyDeriver(),
		cipher:     crypto.NewEnvelopeCipher(),
		now:        time.Now,
		logger:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	return s
}

// Unlock derives the key from password and salt with the session's
// iteration count and moves the session to Unlocked.
//
// Unlock cannot tell whether password is the right one; a wrong password
// only shows up as crypto.ErrAuthenticationFailed on the first DecryptField.
// On any error the session is left Locked and a previously held key is
// wiped.
func (s *Session) Unlock(password string, salt []byte) error {
	return s.unlock(password, salt, s.iterations)
}

// UnlockWithParams is Unlock for a transport-encoded salt and an
// account-pinned iteration count. A zero count falls back to the session
// default.
func (s *Session) UnlockWithParams(password string, params models.KDFParams) error {
	salt, err := crypto.DecodeSalt(params.Salt)
	if err != nil {
		s.Lock()
		return fmt.Errorf("decode salt: %w", err)
	}

	iterations := params.Iterations
	if iterations == 0 {
		iterations = s.iterations
	}

	return s.unlock(password, salt, iterations)
}

func (s *Session) unlock(password string, salt []byte, iterations int) error {
	// Derivation is slow; it runs outside the lock so field operations on a
	// previous key are not blocked by it.
	key, err := s.deriver.Derive(password, salt, iterations)
	if err != nil {
		s.Lock()
		s.logger.Warn().Err(err).Int("iterations", iterations).Msg("vault unlock failed")
		return err
	}

	s.mu.Lock()
	crypto.Wipe(s.key)
	s.key = key
	s.touch()
	s.mu.Unlock()

	s.logger.Info().Int("iterations", iterations).Msg("vault unlocked")
	return nil
}

// Lock overwrites the held key and moves the session to Locked. It waits for
// in-flight field operations. Locking a Locked session is a no-op.
func (s *Session) Lock() {
	s.mu.Lock()
	wasUnlocked := s.key != nil
	crypto.Wipe(s.key)
	s.key = nil
	s.mu.Unlock()

	if wasUnlocked {
		s.logger.Info().Msg("vault locked")
	}
}

// EncryptField seals plaintext under the held key.
// Returns ErrSessionLocked while Locked.
func (s *Session) EncryptField(plaintext []byte) (models.Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return models.Envelope{}, ErrSessionLocked
	}
	s.touch()

	return s.cipher.Encrypt(s.key, plaintext)
}

// DecryptField opens env under the held key.
// Returns ErrSessionLocked while Locked and crypto.ErrAuthenticationFailed
// when env does not authenticate.
func (s *Session) DecryptField(env models.Envelope) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return nil, ErrSessionLocked
	}
	s.touch()

	return s.cipher.Decrypt(s.key, env)
}

// State reports whether a key is held.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return Locked
	}
	return Unlocked
}

// IdleFor returns the time since the last unlock or field operation, or zero
// while Locked.
func (s *Session) IdleFor() time.Duration {
	if s.State() == Locked {
		return 0
	}
	return s.now().Sub(time.Unix(0, s.lastUsed.Load()))
}

// Iterations returns the default iteration count of the session.
func (s *Session) Iterations() int {
	return s.iterations
}

func (s *Session) touch() {
	s.lastUsed.Store(s.now().UnixNano())
}
