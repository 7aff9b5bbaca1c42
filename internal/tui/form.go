package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldURL
	fieldPassword
	fieldNotes
)

var formLabels = []string{"Title", "Username", "URL", "Password", "Notes"}

// EntryFormModel creates a new entry or edits an existing one. It is opened
// with newEntryMsg or editEntryMsg as the navigation payload.
type EntryFormModel struct {
	ctx   context.Context
	vault service.ClientVaultService

	inputs []textinput.Model
	focus  int

	id        int64
	createdAt time.Time

	showSecret bool
	submitting bool
	errMsg     string
	status     string
}

func NewEntryFormModel(ctx context.Context, vault service.ClientVaultService) *EntryFormModel {
	m := &EntryFormModel{
		ctx:   ctx,
		vault: vault,
		inputs: []textinput.Model{
			newInput("title", 40, false),
			newInput("username", 40, false),
			newInput("https://", 40, false),
			newInput("password", 40, true),
			newInput("notes", 40, false),
		},
	}
	m.inputs[fieldNotes].CharLimit = 1024
	m.reset()
	return m
}

func (m *EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case newEntryMsg:
		m.reset()
		return m, textinput.Blink

	case editEntryMsg:
		m.reset()
		m.id = msg.plain.ID
		m.createdAt = msg.plain.CreatedAt
		m.inputs[fieldTitle].SetValue(msg.plain.Title)
		m.inputs[fieldUsername].SetValue(msg.plain.Username)
		m.inputs[fieldURL].SetValue(msg.plain.URL)
		m.inputs[fieldPassword].SetValue(msg.plain.Secret.Reveal())
		m.inputs[fieldNotes].SetValue(msg.plain.Notes)
		return m, textinput.Blink

	case generatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, redirectOnAuthError(msg.err)
		}
		m.inputs[fieldPassword].SetValue(msg.password.Reveal())
		m.errMsg = ""
		m.status = "password generated"
		return m, cmdClearStatus()

	case entrySavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, redirectOnAuthError(msg.err)
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageList, Payload: noticeMsg{text: "entry saved"}} }

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageList} }
		case "tab", "down":
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, focusInputs(m.inputs, m.focus)
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			return m, focusInputs(m.inputs, m.focus)
		case "ctrl+t":
			m.toggleSecret()
			return m, nil
		case "ctrl+g":
			return m, m.cmdGenerate()
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focus++
				return m, focusInputs(m.inputs, m.focus)
			}
			return m, m.submit()
		case "ctrl+s":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *EntryFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	plain := m.plain()
	if strings.TrimSpace(plain.Title) == "" {
		m.errMsg = "title is required"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return m.cmdSave(plain)
}

func (m *EntryFormModel) plain() models.PlainEntry {
	return models.PlainEntry{
		ID:        m.id,
		Title:     strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Username:  strings.TrimSpace(m.inputs[fieldUsername].Value()),
		URL:       strings.TrimSpace(m.inputs[fieldURL].Value()),
		Notes:     m.inputs[fieldNotes].Value(),
		Secret:    models.Secret(m.inputs[fieldPassword].Value()),
		CreatedAt: m.createdAt,
	}
}

func (m *EntryFormModel) toggleSecret() {
	m.showSecret = !m.showSecret
	if m.showSecret {
		m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
		return
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
}

func (m *EntryFormModel) cmdSave(plain models.PlainEntry) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		var (
			entry models.VaultEntry
			err   error
		)
		if plain.ID == 0 {
			entry, err = vault.Create(ctx, plain)
		} else {
			entry, err = vault.Update(ctx, plain)
		}
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m *EntryFormModel) cmdGenerate() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		password, err := vault.GeneratePassword(ctx, models.DefaultGeneratorSettings())
		return generatedMsg{password: password, err: err}
	}
}

func (m *EntryFormModel) reset() {
	resetInputs(m.inputs)
	m.focus = fieldTitle
	focusInputs(m.inputs, m.focus)
	m.id = 0
	m.createdAt = time.Time{}
	m.showSecret = false
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	m.submitting = false
	m.errMsg = ""
	m.status = ""
}

func (m *EntryFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, label := range formLabels {
		b.WriteString(padRight(label, 9))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	renderStatus(&b, m.status, m.errMsg)

	title := "NEW ENTRY"
	if m.id != 0 {
		title = "EDIT ENTRY"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: save │ ctrl+g: generate │ ctrl+t: show password")
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
