// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// Encode converts bytes to standard padded base64.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode is the inverse of [Encode]. It rejects wrong length, invalid
// characters and non-canonical padding bits with [ErrMalformedInput].
func Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return data, nil
}

// saltEncodings lists the alphabets a server may use for salts, in the
// order they are tried.
var saltEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// DecodeSalt decodes a server-issued salt. Servers commonly hand out
// URL-safe unpadded tokens, so both alphabets are accepted, padded or not.
// Returns [ErrMalformedInput] when no alphabet fits.
func DecodeSalt(s string) ([]byte, error) {
	for _, enc := range saltEncodings {
		if data, err := enc.DecodeString(s); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: salt is not base64", ErrMalformedInput)
}
