// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestNewFieldPolicy(t *testing.T) {
	p := NewFieldPolicy([]models.EntryField{models.FieldURL, models.FieldTitle})

	assert.True(t, p.IsSensitive(models.FieldSecret))
	assert.True(t, p.IsSensitive(models.FieldURL))
	assert.False(t, p.IsSensitive(models.FieldTitle))
	assert.False(t, p.IsSensitive(models.FieldUsername))
	assert.False(t, p.IsSensitive(models.FieldNotes))
}

func TestFieldPolicy_SealOpen(t *testing.T) {
	s := unlockedSession(t, testMaster)
	p := NewFieldPolicy([]models.EntryField{models.FieldUsername, models.FieldNotes})

	plain := models.PlainEntry{
		ID:       5,
		Title:    "bank",
		Username: "alice",
		URL:      "https://bank.example",
		Notes:    "",
		Secret:   "hunter2",
	}

	sealed, err := p.Seal(s, plain)
	require.NoError(t, err)

	assert.Equal(t, "bank", sealed.Title)
	assert.Equal(t, "https://bank.example", sealed.URL)
	assert.True(t, models.IsSealed(sealed.Username))
	assert.Empty(t, sealed.Notes, "empty values stay empty")
	assert.NotEmpty(t, sealed.EncryptedPassword)
	assert.NotEmpty(t, sealed.IV)

	opened, err := p.Open(s, sealed)
	require.NoError(t, err)
	assert.Equal(t, plain, opened)
}

func TestFieldPolicy_OpenIgnoresCurrentPolicy(t *testing.T) {
	s := unlockedSession(t, testMaster)

	sealed, err := NewFieldPolicy([]models.EntryField{models.FieldNotes}).Seal(s, models.PlainEntry{Title: "t", Notes: "n", Secret: "x"})
	require.NoError(t, err)

	opened, err := NewFieldPolicy(nil).Open(s, sealed)
	require.NoError(t, err)
	assert.Equal(t, "n", opened.Notes)
}

func TestFieldPolicy_RejectsSealedLookingInput(t *testing.T) {
	s := unlockedSession(t, testMaster)

	_, err := NewFieldPolicy(nil).Seal(s, models.PlainEntry{Title: "t", Notes: "enc:v1:abc:def", Secret: "x"})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestFieldPolicy_OpenCorruptedField(t *testing.T) {
	s := unlockedSession(t, testMaster)

	sealed, err := NewFieldPolicy(nil).Seal(s, models.PlainEntry{Title: "t", Secret: "x"})
	require.NoError(t, err)
	sealed.Notes = "enc:v1:only-one-half"

	_, err = NewFieldPolicy(nil).Open(s, sealed)
	assert.ErrorIs(t, err, ErrCorruptedEntry)
}

func TestFieldPolicy_Locked(t *testing.T) {
	s := newTestSession()

	_, err := NewFieldPolicy(nil).Seal(s, models.PlainEntry{Title: "t", Secret: "x"})
	assert.ErrorIs(t, err, session.ErrSessionLocked)
}
