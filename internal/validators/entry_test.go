// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func validEntry() models.PlainEntry {
	return models.PlainEntry{
		Title:    "GitHub",
		Username: "octocat",
		URL:      "https://github.com",
		Notes:    "work account",
		Secret:   "hunter2",
	}
}

func TestNewEntryValidator(t *testing.T) {
	v := NewEntryValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewEntryValidator()
	ctx := context.Background()

	entry := validEntry()
	creds := models.Credentials{Email: "alice@example.com", Password: "pw"}
	settings := models.DefaultGeneratorSettings()

	assert.NoError(t, v.Validate(ctx, entry))
	assert.NoError(t, v.Validate(ctx, &entry))
	assert.NoError(t, v.Validate(ctx, creds))
	assert.NoError(t, v.Validate(ctx, &creds))
	assert.NoError(t, v.Validate(ctx, settings))
	assert.NoError(t, v.Validate(ctx, &settings))

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.VaultEntry{}), ErrUnsupportedType)
}

func TestValidate_PlainEntry(t *testing.T) {
	sealed := models.Envelope{Ciphertext: "Y3Q=", Nonce: "bm9uY2U="}.Seal()

	tests := []struct {
		name    string
		mutate  func(*models.PlainEntry)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.PlainEntry) {}},
		{name: "empty optional fields", mutate: func(e *models.PlainEntry) { e.Username, e.URL, e.Notes = "", "", "" }},
		{name: "blank title", mutate: func(e *models.PlainEntry) { e.Title = "  " }, wantErr: ErrEmptyTitle},
		{name: "long title", mutate: func(e *models.PlainEntry) { e.Title = strings.Repeat("t", MaxTitleLength+1) }, wantErr: ErrFieldTooLong},
		{name: "title counts runes", mutate: func(e *models.PlainEntry) { e.Title = strings.Repeat("я", MaxTitleLength) }},
		{name: "sealed title", mutate: func(e *models.PlainEntry) { e.Title = sealed }, wantErr: ErrSealedPrefix},
		{name: "sealed username", mutate: func(e *models.PlainEntry) { e.Username = sealed }, wantErr: ErrSealedPrefix},
		{name: "sealed url", mutate: func(e *models.PlainEntry) { e.URL = sealed }, wantErr: ErrSealedPrefix},
		{name: "sealed notes", mutate: func(e *models.PlainEntry) { e.Notes = sealed }, wantErr: ErrSealedPrefix},
		{name: "long notes", mutate: func(e *models.PlainEntry) { e.Notes = strings.Repeat("n", MaxFieldLength+1) }, wantErr: ErrFieldTooLong},
		{name: "missing id", mutate: func(*models.PlainEntry) {}, fields: []string{FieldID}, wantErr: ErrInvalidEntryID},
		{name: "id present", mutate: func(e *models.PlainEntry) { e.ID = 3 }, fields: []string{FieldID, FieldTitle}},
		{name: "scoped skips title", mutate: func(e *models.PlainEntry) { e.Title = "" }, fields: []string{FieldURL}},
		{name: "unknown field", mutate: func(*models.PlainEntry) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewEntryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)

			err := v.Validate(context.Background(), entry, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SealedErrorNamesField(t *testing.T) {
	entry := validEntry()
	entry.URL = models.Envelope{Ciphertext: "a", Nonce: "b"}.Seal()

	err := NewEntryValidator().Validate(context.Background(), entry)

	require.Error(t, err)
	assert.Contains(t, err.Error(), FieldURL)
}

func TestValidate_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid", creds: models.Credentials{Email: "alice@example.com", Password: "pw"}},
		{name: "empty email", creds: models.Credentials{Password: "pw"}, wantErr: ErrEmptyEmail},
		{name: "bad email", creds: models.Credentials{Email: "alice", Password: "pw"}, wantErr: ErrInvalidEmail},
		{name: "empty password", creds: models.Credentials{Email: "alice@example.com"}, wantErr: ErrEmptyPassword},
		{name: "email only", creds: models.Credentials{Email: "alice@example.com"}, fields: []string{FieldEmail}},
		{name: "unknown field", creds: models.Credentials{}, fields: []string{FieldTitle}, wantErr: ErrUnknownField},
	}

	v := NewEntryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_GeneratorSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings models.GeneratorSettings
		wantErr  error
	}{
		{name: "defaults", settings: models.DefaultGeneratorSettings()},
		{name: "min length", settings: models.GeneratorSettings{Length: MinGeneratedLength, IncludeNumbers: true}},
		{name: "max length", settings: models.GeneratorSettings{Length: MaxGeneratedLength, IncludeSymbols: true}},
		{name: "too short", settings: models.GeneratorSettings{Length: 3, IncludeLowercase: true}, wantErr: ErrInvalidLength},
		{name: "too long", settings: models.GeneratorSettings{Length: 129, IncludeLowercase: true}, wantErr: ErrInvalidLength},
		{name: "no classes", settings: models.GeneratorSettings{Length: 16, ExcludeSimilar: true}, wantErr: ErrNoCharacterClass},
	}

	v := NewEntryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.settings)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
