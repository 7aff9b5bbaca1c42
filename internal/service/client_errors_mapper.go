// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnreachable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrNoToken),
		errors.Is(err, adapter.ErrTokenExpired),
		errors.Is(err, adapter.ErrEmptyToken):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgServerInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgServerEmailRegistered:
			return ErrEmailTaken
		case app.MsgServerGeneratorLength, app.MsgServerGeneratorCharset:
			return fmt.Errorf("%w: %s", ErrInvalidGeneratorSettings, msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrConflict):
		return ErrEmailTaken

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		return ErrEntryNotFound

	case errors.Is(err, adapter.ErrValidation):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrRateLimited):
		return ErrRateLimited

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
