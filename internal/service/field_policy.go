// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// FieldPolicy decides which entry fields leave the client sealed.
//
// The secret value is always sensitive and travels as the entry's own
// (encrypted_password, iv) pair. Username, url and notes are sensitive only
// when configured; a sensitive one is stored in its own text field as
// [models.Envelope.Seal] output. Title is never sensitive so the list can be
// rendered while the vault is locked.
type FieldPolicy struct {
	sensitive map[models.EntryField]bool
}

// NewFieldPolicy builds a policy from the configured sensitive fields.
// FieldSecret is always added and FieldTitle is ignored.
func NewFieldPolicy(fields []models.EntryField) FieldPolicy {
	p := FieldPolicy{sensitive: map[models.EntryField]bool{models.FieldSecret: true}}
	for _, f := range fields {
		if f == models.FieldTitle {
			continue
		}
		p.sensitive[f] = true
	}
	return p
}

// IsSensitive reports whether field is sealed before it leaves the client.
func (p FieldPolicy) IsSensitive(field models.EntryField) bool {
	return p.sensitive[field]
}

// Seal converts plain into its transmitted form using c.
func (p FieldPolicy) Seal(c FieldCipher, plain models.PlainEntry) (models.VaultEntry, error) {
	entry := models.VaultEntry{
		ID:        plain.ID,
		Title:     plain.Title,
		CreatedAt: plain.CreatedAt,
		UpdatedAt: plain.UpdatedAt,
	}

	secret := plain.Secret.Bytes()
	env, err := c.EncryptField(secret)
	crypto.Wipe(secret)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("seal %s: %w", models.FieldSecret, err)
	}
	entry.SetEnvelope(env)

	fields := []struct {
		name  models.EntryField
		value string
		dst   *string
	}{
		{models.FieldUsername, plain.Username, &entry.Username},
		{models.FieldURL, plain.URL, &entry.URL},
		{models.FieldNotes, plain.Notes, &entry.Notes},
	}
	for _, f := range fields {
		if *f.dst, err = p.sealField(c, f.name, f.value); err != nil {
			return models.VaultEntry{}, err
		}
	}

	return entry, nil
}

func (p FieldPolicy) sealField(c FieldCipher, field models.EntryField, value string) (string, error) {
	if models.IsSealed(value) {
		return "", fmt.Errorf("%w: %s must not start with a sealed prefix", ErrInvalidEntry, field)
	}
	if value == "" || !p.IsSensitive(field) {
		return value, nil
	}

	env, err := c.EncryptField([]byte(value))
	if err != nil {
		return "", fmt.Errorf("seal %s: %w", field, err)
	}
	return env.Seal(), nil
}

// Open decrypts the secret and every sealed field of entry. Sealed fields are
// opened whatever the current policy says, so changing the configuration
// never hides existing data.
func (p FieldPolicy) Open(c FieldCipher, entry models.VaultEntry) (models.PlainEntry, error) {
	plain := models.PlainEntry{
		ID:        entry.ID,
		Title:     entry.Title,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}

	secret, err := c.DecryptField(entry.Envelope())
	if err != nil {
		return models.PlainEntry{}, fmt.Errorf("open %s: %w", models.FieldSecret, err)
	}
	plain.Secret = models.Secret(secret)
	crypto.Wipe(secret)

	fields := []struct {
		name  models.EntryField
		value string
		dst   *string
	}{
		{models.FieldUsername, entry.Username, &plain.Username},
		{models.FieldURL, entry.URL, &plain.URL},
		{models.FieldNotes, entry.Notes, &plain.Notes},
	}
	for _, f := range fields {
		if *f.dst, err = openField(c, f.name, f.value); err != nil {
			return models.PlainEntry{}, err
		}
	}

	return plain, nil
}

func openField(c FieldCipher, field models.EntryField, value string) (string, error) {
	if !models.IsSealed(value) {
		return value, nil
	}

	env, err := models.ParseSealed(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCorruptedEntry, field, err)
	}

	b, err := c.DecryptField(env)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", field, err)
	}
	defer crypto.Wipe(b)

	return string(b), nil
}
