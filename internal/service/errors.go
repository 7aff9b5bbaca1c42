package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

// Errors surfaced to the UI. Messages are user-facing.
var (
	ErrWrongMasterPassword = errors.New(app.MsgWrongMasterPassword)
	ErrVaultLocked         = errors.New(app.MsgVaultLocked)
	ErrSessionExpired      = errors.New(app.MsgSessionExpired)
	ErrInvalidCredentials  = errors.New(app.MsgInvalidCredentials)
	ErrEmailTaken          = errors.New(app.MsgEmailTaken)
	ErrServerUnavailable   = errors.New(app.MsgServerUnavailable)
	ErrRateLimited         = errors.New(app.MsgRateLimited)
)

var (
	ErrNotLoggedIn              = errors.New("not logged in")
	ErrEntryNotFound            = errors.New("entry not found")
	ErrInvalidEntry             = errors.New("invalid entry")
	ErrInvalidGeneratorSettings = errors.New("invalid generator settings")
	ErrInvalidDataProvided      = errors.New("invalid data provided")
	ErrCorruptedEntry           = errors.New("entry data is corrupted")
)
