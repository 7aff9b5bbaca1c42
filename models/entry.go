// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// EntryField names a field of a vault entry. It is used by the calling
// layer's field policy to decide which fields leave the client sealed.
type EntryField string

const (
	// FieldSecret is the secret value. It is always sensitive.
	FieldSecret EntryField = "password"
	// FieldUsername is the login/username of the entry.
	FieldUsername EntryField = "username"
	// FieldURL is the site URL of the entry.
	FieldURL EntryField = "url"
	// FieldNotes is the free-form notes of the entry.
	FieldNotes EntryField = "notes"
	// FieldTitle is the entry title. It is never sensitive: the entry list
	// must be renderable while the vault is locked.
	FieldTitle EntryField = "title"
)

// ParseEntryField converts a configuration token into an [EntryField].
func ParseEntryField(s string) (EntryField, error) {
	switch f := EntryField(s); f {
	case FieldSecret, FieldUsername, FieldURL, FieldNotes, FieldTitle:
		return f, nil
	}
	return "", fmt.Errorf("unknown entry field %q", s)
}

// VaultEntry is one vault record as the server and the local cache see it.
//
// Title, Username, URL and Notes are plaintext metadata unless the field
// policy sealed them (see [Envelope.Seal]). The secret value only ever
// exists here as the (EncryptedPassword, IV) envelope pair.
type VaultEntry struct {
	// ID is the server-assigned identifier. Zero for entries not yet created.
	ID int64 `json:"id,omitempty"`

	Title    string `json:"title"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`

	// EncryptedPassword is the ciphertext half of the secret envelope.
	EncryptedPassword string `json:"encrypted_password"`

	// IV is the nonce half of the secret envelope.
	IV string `json:"iv"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Envelope returns the secret envelope carried by the entry.
func (e VaultEntry) Envelope() Envelope {
	return Envelope{Ciphertext: e.EncryptedPassword, Nonce: e.IV}
}

// SetEnvelope stores both halves of env on the entry at once.
func (e *VaultEntry) SetEnvelope(env Envelope) {
	e.EncryptedPassword = env.Ciphertext
	e.IV = env.Nonce
}

// TableName returns the name of the local cache table for entries.
func (e VaultEntry) TableName() string {
	return "entries"
}

// PlainEntry is the decrypted, client-only view of a [VaultEntry]. It must
// never be serialized to storage or transport; Secret redacts itself on
// every diagnostic path.
type PlainEntry struct {
	ID       int64
	Title    string
	Username string
	URL      string
	Notes    string
	Secret   Secret

	CreatedAt time.Time
	UpdatedAt time.Time
}
