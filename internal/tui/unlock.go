package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// UnlockModel asks for the master password of the logged-in account. The
// master password never leaves the client; it only derives the vault key.
type UnlockModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	input      textinput.Model
	submitting bool
	status     string
	errMsg     string
}

func NewUnlockModel(ctx context.Context, auth service.ClientAuthService) *UnlockModel {
	input := newInput("master password", 40, true)
	input.Focus()

	return &UnlockModel{ctx: ctx, auth: auth, input: input}
}

func (m *UnlockModel) Init() tea.Cmd {
	m.input.Reset()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.status = msg.text
		m.input.Reset()
		return m, m.input.Focus()

	case unlockResultMsg:
		m.submitting = false
		m.input.Reset()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, redirectOnAuthError(msg.err)
		}
		m.status = ""
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageList} }

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+o", "esc":
			m.auth.Logout()
			m.status = ""
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: noticeMsg{text: "logged out"}} }
		case "enter":
			if m.submitting {
				return m, nil
			}
			pass := m.input.Value()
			if pass == "" {
				m.errMsg = "master password is required"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(models.Secret(pass))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	if account, ok := m.auth.Account(); ok {
		b.WriteString("Account: ")
		b.WriteString(account.Email)
		b.WriteString("\n\n")
	}

	b.WriteString("Master password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Deriving key...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: log out")
}

func (m *UnlockModel) cmdUnlock(master models.Secret) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return unlockResultMsg{err: auth.Unlock(ctx, master)}
	}
}
