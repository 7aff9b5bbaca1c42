package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// Run shows the terminal UI until the user quits or ctx is cancelled.
// Quitting with ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// NotifyLocked tells a running UI that the vault was locked behind its back.
// It is safe to call from any goroutine and a no-op when no UI is running.
func (t *TUI) NotifyLocked() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		go p.Send(vaultLockedMsg{})
	}
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	auth := t.services.AuthService
	vault := t.services.VaultService

	return map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, auth),
		pageRegister:  NewRegisterModel(ctx, auth),
		pageUnlock:    NewUnlockModel(ctx, auth),
		pageList:      NewListModel(ctx, auth, vault, t.services.FieldPolicy),
		pageForm:      NewEntryFormModel(ctx, vault),
		pageGenerator: NewGeneratorModel(ctx, vault),
	}
}
