package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle     = errors.New("title is required")
	ErrFieldTooLong   = errors.New("field is too long")
	ErrSealedPrefix   = errors.New("value must not start with the sealed prefix")
	ErrInvalidEntryID = errors.New("invalid entry id")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is not valid")
	ErrEmptyPassword = errors.New("password is required")

	ErrInvalidLength    = errors.New("length must be between 4 and 128")
	ErrNoCharacterClass = errors.New("at least one character class must be selected")
)

// fieldError names the offending field in err.
func fieldError(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}
