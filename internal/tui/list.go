package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const listPageSize = 12

// ListModel shows the entries of the current account with a detail pane for
// the selected one. Titles are always visible; the other values are shown
// only after the entry has been revealed.
type ListModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	vault  service.ClientVaultService
	policy service.FieldPolicy

	all      []models.VaultEntry
	visible  []models.VaultEntry
	idx      int
	revealed *models.PlainEntry

	filter    textinput.Model
	filtering bool

	confirm *confirmModel

	loading bool
	offline bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewListModel(ctx context.Context, auth service.ClientAuthService, vault service.ClientVaultService, policy service.FieldPolicy) *ListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &ListModel{
		ctx:     ctx,
		auth:    auth,
		vault:   vault,
		policy:  policy,
		filter:  newInput("search", 30, false),
		spinner: s,
	}
}

func (m *ListModel) Init() tea.Cmd {
	m.loading = true
	m.revealed = nil
	m.confirm = nil
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		cmd := m.Init()
		m.status = msg.text
		return m, tea.Batch(cmd, cmdClearStatus())

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, redirectOnAuthError(msg.err)
		}
		m.all = msg.entries
		m.offline = msg.offline
		m.applyFilter()
		return m, nil

	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, redirectOnAuthError(msg.err)
		}
		m.removeEntry(msg.id)
		m.status = "entry deleted"
		return m, cmdClearStatus()

	case statusMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, redirectOnAuthError(msg.err)
		}
		m.errMsg = ""
		m.status = msg.text
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			if entry, ok := m.current(); ok {
				return m, m.cmdDelete(entry.ID)
			}
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.filtering {
		switch {
		case key.Matches(msg, keys.esc):
			m.filtering = false
			m.filter.Reset()
			m.filter.Blur()
			m.applyFilter()
			return m, nil
		case key.Matches(msg, keys.enter):
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
			m.revealed = nil
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
			m.revealed = nil
		}
	case key.Matches(msg, keys.search):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, keys.esc):
		if m.filter.Value() != "" {
			m.filter.Reset()
			m.applyFilter()
		}
	case key.Matches(msg, keys.reveal):
		if m.revealed != nil {
			m.revealed = nil
			return m, nil
		}
		plain, cmd := m.reveal()
		if cmd != nil {
			return m, cmd
		}
		m.revealed = plain
	case key.Matches(msg, keys.copy):
		return m, m.copyField(func(p models.PlainEntry) (string, string) {
			return p.Secret.Reveal(), "password copied"
		})
	case key.Matches(msg, keys.copyUser):
		return m, m.copyField(func(p models.PlainEntry) (string, string) {
			return p.Username, "username copied"
		})
	case key.Matches(msg, keys.refresh):
		return m, m.Init()
	case key.Matches(msg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Page: pageForm, Payload: newEntryMsg{}} }
	case key.Matches(msg, keys.edit):
		plain, cmd := m.reveal()
		if cmd != nil {
			return m, cmd
		}
		if plain == nil {
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageForm, Payload: editEntryMsg{plain: *plain}} }
	case key.Matches(msg, keys.delete):
		if entry, ok := m.current(); ok {
			m.confirm = &confirmModel{message: entry.Title}
		}
	case key.Matches(msg, keys.generate):
		return m, func() tea.Msg { return NavigateTo{Page: pageGenerator} }
	case key.Matches(msg, keys.lock):
		m.auth.Lock()
		m.revealed = nil
		return m, func() tea.Msg { return NavigateTo{Page: pageUnlock, Payload: noticeMsg{text: "vault locked"}} }
	case key.Matches(msg, keys.logout):
		m.auth.Logout()
		m.all, m.visible, m.revealed = nil, nil, nil
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: noticeMsg{text: "logged out"}} }
	}

	return m, nil
}

func (m *ListModel) current() (models.VaultEntry, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.VaultEntry{}, false
	}
	return m.visible[m.idx], true
}

// reveal decrypts the selected entry. A non-nil command means it failed.
func (m *ListModel) reveal() (*models.PlainEntry, tea.Cmd) {
	entry, ok := m.current()
	if !ok {
		return nil, nil
	}
	plain, err := m.vault.Reveal(entry)
	if err != nil {
		return nil, func() tea.Msg { return statusMsg{err: err} }
	}
	return &plain, nil
}

func (m *ListModel) copyField(pick func(models.PlainEntry) (string, string)) tea.Cmd {
	plain, cmd := m.reveal()
	if cmd != nil || plain == nil {
		return cmd
	}
	value, text := pick(*plain)
	if value == "" {
		return func() tea.Msg { return statusMsg{text: "nothing to copy"} }
	}
	return func() tea.Msg {
		if err := writeClipboard(value); err != nil {
			return statusMsg{err: fmt.Errorf("clipboard: %w", err)}
		}
		return statusMsg{text: text}
	}
}

func (m *ListModel) applyFilter() {
	m.visible = m.vault.Search(m.all, m.filter.Value())
	if m.idx >= len(m.visible) {
		m.idx = max(len(m.visible)-1, 0)
	}
	m.revealed = nil
}

func (m *ListModel) removeEntry(id int64) {
	kept := m.all[:0]
	for _, e := range m.all {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.all = kept
	m.applyFilter()
}

func (m *ListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		entries, offline, err := vault.List(ctx)
		return listLoadedMsg{entries: entries, offline: offline, err: err}
	}
}

func (m *ListModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return entryDeletedMsg{id: id, err: vault.Delete(ctx, id)}
	}
}

func (m *ListModel) View() string {
	var b strings.Builder

	if account, ok := m.auth.Account(); ok {
		b.WriteString("Account: ")
		b.WriteString(account.Email)
		b.WriteString("\n")
	}
	if m.offline {
		b.WriteString(warnStyle.Render(app.MsgOfflineMode))
		b.WriteString("\n")
	}
	if m.filtering || m.filter.Value() != "" {
		b.WriteString("Search: [")
		b.WriteString(m.filter.View())
		b.WriteString("]\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading entries...\n")
	case len(m.visible) == 0 && len(m.all) == 0:
		b.WriteString("No entries yet. Press n to add one.\n")
	case len(m.visible) == 0:
		b.WriteString("No entries match the search.\n")
	default:
		m.renderRows(&b)
		if entry, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(renderDetail(entry, m.revealed, m.policy))
			b.WriteString("\n")
		}
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	renderStatus(&b, m.status, m.errMsg)

	hotKeys := "↑/↓: move │ r: reveal │ c: copy │ u: copy user │ /: search │ n: new │ e: edit │ d: delete │ g: generator │ ctrl+r: refresh │ L: lock │ O: log out"
	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ListModel) renderRows(b *strings.Builder) {
	start := 0
	if m.idx >= listPageSize {
		start = m.idx - listPageSize + 1
	}
	end := min(start+listPageSize, len(m.visible))

	b.WriteString(fmt.Sprintf("  %-4s │ %-30s │ %s\n", "#", "Title", "Username"))
	b.WriteString("  ─────┼────────────────────────────────┼──────────────────────\n")
	for i := start; i < end; i++ {
		e := m.visible[i]
		line := fmt.Sprintf("%-4d │ %-30s │ %s", i+1, fitText(e.Title, 30), fitText(valueOrDash(maskSealed(e.Username)), 20))
		if i == m.idx {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	if len(m.visible) > listPageSize {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %d/%d", m.idx+1, len(m.visible))))
		b.WriteString("\n")
	}
}
