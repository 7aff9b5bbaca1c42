package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned entry id. It is only checked when
	// asked for, since new entries have none.
	FieldID = "id"

	// FieldTitle targets the entry title.
	FieldTitle = "title"

	// FieldUsername targets the entry username.
	FieldUsername = "username"

	// FieldURL targets the entry url.
	FieldURL = "url"

	// FieldNotes targets the entry notes.
	FieldNotes = "notes"

	// FieldEmail targets the account email of a credentials pair.
	FieldEmail = "email"

	// FieldPassword targets the account password of a credentials pair.
	FieldPassword = "password"

	// FieldLength targets the generator length.
	FieldLength = "length"

	// FieldCharset targets the generator character classes.
	FieldCharset = "charset"
)

// Limits enforced on user input.
const (
	MaxTitleLength     = 256
	MaxFieldLength     = 1024
	MinGeneratedLength = 4
	MaxGeneratedLength = 128
)

// EntryValidator implements [Validator] for the values the user types in:
// entries, credentials and generator settings. Value and pointer forms are
// both accepted.
type EntryValidator struct {
}

// NewEntryValidator constructs a new EntryValidator and returns it as the
// Validator interface.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate dispatches validation to the type-specific method.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PlainEntry:
		return v.validatePlainEntry(ctx, value, fields...)
	case *models.PlainEntry:
		return v.validatePlainEntry(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.GeneratorSettings:
		return v.validateGeneratorSettings(ctx, value, fields...)
	case *models.GeneratorSettings:
		return v.validateGeneratorSettings(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validatePlainEntry(_ context.Context, entry models.PlainEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldURL, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if entry.ID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldTitle:
			title := strings.TrimSpace(entry.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > MaxTitleLength {
				return fieldError(FieldTitle, ErrFieldTooLong)
			}
			// the list shows titles while the vault is locked, so they are
			// never sealed and must never look sealed
			if models.IsSealed(title) {
				return fieldError(FieldTitle, ErrSealedPrefix)
			}
		case FieldUsername:
			if err := checkFreeText(FieldUsername, entry.Username); err != nil {
				return err
			}
		case FieldURL:
			if err := checkFreeText(FieldURL, entry.URL); err != nil {
				return err
			}
		case FieldNotes:
			if err := checkFreeText(FieldNotes, entry.Notes); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(creds.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password.IsEmpty() {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateGeneratorSettings(_ context.Context, settings models.GeneratorSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldCharset}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if settings.Length < MinGeneratedLength || settings.Length > MaxGeneratedLength {
				return ErrInvalidLength
			}
		case FieldCharset:
			if !settings.IncludeUppercase && !settings.IncludeLowercase && !settings.IncludeNumbers && !settings.IncludeSymbols {
				return ErrNoCharacterClass
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkFreeText(field, value string) error {
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return fieldError(field, ErrFieldTooLong)
	}
	if models.IsSealed(value) {
		return fieldError(field, ErrSealedPrefix)
	}
	return nil
}
