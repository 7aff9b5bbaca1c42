// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	generatorMinLength = 4
	generatorMaxLength = 128
)

// GeneratorModel asks the server-side generator for passwords. The length is
// changed with left/right and the character classes are toggled with 1-5.
type GeneratorModel struct {
	ctx   context.Context
	vault service.ClientVaultService

	settings   models.GeneratorSettings
	password   models.Secret
	generating bool
	status     string
	errMsg     string
}

func NewGeneratorModel(ctx context.Context, vault service.ClientVaultService) *GeneratorModel {
	return &GeneratorModel{
		ctx:      ctx,
		vault:    vault,
		settings: models.DefaultGeneratorSettings(),
	}
}

func (m *GeneratorModel) Init() tea.Cmd {
	m.password = ""
	m.status = ""
	m.errMsg = ""
	m.generating = false
	return nil
}

func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, redirectOnAuthError(msg.err)
		}
		m.errMsg = ""
		m.password = msg.password
		return m, nil

	case statusMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.text
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageList} }
		case key.Matches(msg, keys.left):
			if m.settings.Length > generatorMinLength {
				m.settings.Length--
			}
		case key.Matches(msg, keys.right):
			if m.settings.Length < generatorMaxLength {
				m.settings.Length++
			}
		case key.Matches(msg, keys.copy):
			if m.password.IsEmpty() {
				return m, nil
			}
			value := m.password.Reveal()
			return m, func() tea.Msg {
				if err := writeClipboard(value); err != nil {
					return statusMsg{err: fmt.Errorf("clipboard: %w", err)}
				}
				return statusMsg{text: "password copied"}
			}
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.generate):
			if m.generating {
				return m, nil
			}
			m.generating = true
			m.errMsg = ""
			return m, m.cmdGenerate(m.settings)
		default:
			m.toggle(msg.String())
		}
	}

	return m, nil
}

func (m *GeneratorModel) toggle(k string) {
	switch k {
	case "1":
		m.settings.IncludeUppercase = !m.settings.IncludeUppercase
	case "2":
		m.settings.IncludeLowercase = !m.settings.IncludeLowercase
	case "3":
		m.settings.IncludeNumbers = !m.settings.IncludeNumbers
	case "4":
		m.settings.IncludeSymbols = !m.settings.IncludeSymbols
	case "5":
		m.settings.ExcludeSimilar = !m.settings.ExcludeSimilar
	}
}

func (m *GeneratorModel) cmdGenerate(settings models.GeneratorSettings) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		password, err := vault.GeneratePassword(ctx, settings)
		return generatedMsg{password: password, err: err}
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m *GeneratorModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Length        │ ◀ %d ▶\n", m.settings.Length))
	b.WriteString(fmt.Sprintf("1 Uppercase   │ %s\n", checkbox(m.settings.IncludeUppercase)))
	b.WriteString(fmt.Sprintf("2 Lowercase   │ %s\n", checkbox(m.settings.IncludeLowercase)))
	b.WriteString(fmt.Sprintf("3 Numbers     │ %s\n", checkbox(m.settings.IncludeNumbers)))
	b.WriteString(fmt.Sprintf("4 Symbols     │ %s\n", checkbox(m.settings.IncludeSymbols)))
	b.WriteString(fmt.Sprintf("5 No similar  │ %s\n", checkbox(m.settings.ExcludeSimilar)))
	b.WriteString("\n")

	switch {
	case m.generating:
		b.WriteString("Generating...\n")
	case !m.password.IsEmpty():
		b.WriteString("Password: ")
		b.WriteString(selectedStyle.Render(m.password.Reveal()))
		b.WriteString("\n")
	}

	renderStatus(&b, m.status, m.errMsg)

	return renderPage("PASSWORD GENERATOR", strings.TrimRight(b.String(), "\n"), "←/→: length │ 1-5: toggle │ enter/g: generate │ c: copy │ esc: back")
}
