// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Redacted is what every diagnostic rendering of a [Secret] prints.
const Redacted = "[REDACTED]"

// Secret holds a plaintext secret value (a revealed password, a master
// password on its way to key derivation).
//
// Every diagnostic path is redacted: fmt verbs, JSON encoding and zerolog
// fields all print [Redacted]. The real value is only available through
// [Secret.Reveal], which makes accidental logging visible in review.
type Secret string

// Reveal returns the plaintext value.
func (s Secret) Reveal() string {
	return string(s)
}

// Bytes returns a fresh copy of the plaintext bytes.
func (s Secret) Bytes() []byte {
	return []byte(s)
}

// IsEmpty reports whether the secret has zero length.
func (s Secret) IsEmpty() bool {
	return len(s) == 0
}

// String implements [fmt.Stringer].
func (s Secret) String() string {
	return Redacted
}

// GoString implements [fmt.GoStringer] so %#v is redacted as well.
func (s Secret) GoString() string {
	return Redacted
}

// Format implements [fmt.Formatter]; every verb renders [Redacted].
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(Redacted))
}

// MarshalJSON never emits the plaintext.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Redacted + `"`), nil
}

// MarshalZerologObject lets a secret be attached with Object() without
// leaking; only its length is recorded.
func (s Secret) MarshalZerologObject(e *zerolog.Event) {
	e.Str("value", Redacted).Int("len", len(s))
}
