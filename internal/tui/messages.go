package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Page names known to [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageUnlock    = "unlock"
	pageList      = "list"
	pageForm      = "form"
	pageGenerator = "generator"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// noticeMsg carries a one-line message to show on the page it is sent to.
type noticeMsg struct {
	text string
}

// vaultLockedMsg is sent from outside the program when the auto-lock worker
// locked the session.
type vaultLockedMsg struct{}

type authResultMsg struct {
	account models.Account
	err     error
}

type unlockResultMsg struct {
	err error
}

type listLoadedMsg struct {
	entries []models.VaultEntry
	offline bool
	err     error
}

type entrySavedMsg struct {
	entry models.VaultEntry
	err   error
}

type entryDeletedMsg struct {
	id  int64
	err error
}

type generatedMsg struct {
	password models.Secret
	err      error
}

// newEntryMsg opens the entry form empty.
type newEntryMsg struct{}

// editEntryMsg opens the entry form filled with plain.
type editEntryMsg struct {
	plain models.PlainEntry
}

type statusMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
