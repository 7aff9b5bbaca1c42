package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const minAccountPasswordLength = 8

// RegisterModel is the Bubble Tea model for the registration screen. It renders three
// text inputs (email, account password and its confirmation) and dispatches an async
// registration command on form submission. A registered account is logged in, so on
// success the unlock page is opened where the master password is chosen.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with three pre-configured text inputs.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := []textinput.Model{
		newInput("email", 40, false),
		newInput("account password", 40, true),
		newInput("repeat password", 40, true),
	}
	fields[0].Focus()

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageUnlock, Payload: noticeMsg{text: "account created, choose your master password"}}
		}

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

			creds, errMsg := m.validate()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) validate() (models.Credentials, string) {
	email := strings.TrimSpace(m.inputs[0].Value())
	pass := m.inputs[1].Value()
	repeat := m.inputs[2].Value()

	switch {
	case email == "" || pass == "":
		return models.Credentials{}, "email and password are required"
	case !strings.Contains(email, "@"):
		return models.Credentials{}, "email is not valid"
	case len(pass) < minAccountPasswordLength:
		return models.Credentials{}, "password must be at least 8 characters"
	case pass != repeat:
		return models.Credentials{}, "passwords do not match"
	}

	return models.Credentials{Email: email, Password: models.Secret(pass)}, ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	labels := []string{"Email     │ [", "Password  │ [", "Repeat    │ ["}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		account, err := auth.Register(ctx, creds)
		return authResultMsg{account: account, err: err}
	}
}

func (m *RegisterModel) reset() {
	resetInputs(m.inputs)
	m.focus = 0
	focusInputs(m.inputs, 0)
	m.submitting = false
	m.errMsg = ""
}
