// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// humanizeError returns the message shown for err. Known service errors are
// reduced to their fixed wording; anything else is shown as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	known := []error{
		service.ErrServerUnavailable,
		service.ErrSessionExpired,
		service.ErrWrongMasterPassword,
		service.ErrVaultLocked,
		service.ErrInvalidCredentials,
		service.ErrEmailTaken,
		service.ErrRateLimited,
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return k.Error()
		}
	}

	return err.Error()
}

// redirectOnAuthError returns a navigation command when err means the user
// has to log in or unlock again, and nil otherwise.
func redirectOnAuthError(err error) tea.Cmd {
	switch {
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrNotLoggedIn):
		return func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: noticeMsg{text: app.MsgSessionExpired}}
		}
	case errors.Is(err, service.ErrVaultLocked):
		return func() tea.Msg {
			return NavigateTo{Page: pageUnlock, Payload: noticeMsg{text: app.MsgVaultLocked}}
		}
	}
	return nil
}
