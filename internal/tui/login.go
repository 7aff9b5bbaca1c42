// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email and account password) and dispatches an async login command on form submission.
// On success the form is cleared and the unlock page is opened.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and password inputs.
// The email field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	emailInput := newInput("email", 40, false)
	emailInput.Focus()

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, newInput("account password", 40, true)},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [noticeMsg]      shown above the form (e.g. an expired session).
//   - authResultMsg    clears submitting state; on success opens the unlock page.
//   - esc              cancels and navigates back to the menu.
//   - tab / shift+tab  moves focus between inputs.
//   - enter            validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.status = msg.text
		return m, nil

	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageUnlock} }

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, focusInputs(m.inputs, m.focus)
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			return m, focusInputs(m.inputs, m.focus)
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{Email: email, Password: models.Secret(pass)})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form as a two-column table with
// email and password inputs, a submission indicator, and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n\n")
	}
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		account, err := auth.Login(ctx, creds)
		return authResultMsg{account: account, err: err}
	}
}

func (m *LoginModel) reset() {
	resetInputs(m.inputs)
	m.focus = 0
	focusInputs(m.inputs, 0)
	m.submitting = false
	m.errMsg = ""
	m.status = ""
}
