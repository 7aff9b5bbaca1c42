package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// App owns every long-lived client component: the local cache, the vault
// session, the services, the auto-lock worker and the terminal UI.
type App struct {
	storages *store.ClientStorages
	session  *session.Session
	services *service.ClientServices
	workers  *workers.Workers
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client from cfg. The returned App must be closed.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	userAgent := utils.DefaultUserAgent
	if v := buildInfo.BuildVersion(); v != "" {
		userAgent += "/" + v
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, userAgent, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var opts []session.Option
	if cfg.Vault.KDFIterations > 0 {
		opts = append(opts, session.WithIterations(cfg.Vault.KDFIterations))
	}
	vaultSession := session.New(log, opts...)

	services := service.NewClientServices(storages, serverAdapter, vaultSession, cfg.Vault, log)
	ui := tui.New(services, buildInfo, log)

	autoLocker := workers.NewAutoLocker(
		vaultSession,
		cfg.Workers.AutoLockTimeout,
		cfg.Workers.AutoLockInterval,
		ui.NotifyLocked,
		log,
	)

	return &App{
		storages: storages,
		session:  vaultSession,
		services: services,
		workers:  workers.NewWorkers(autoLocker),
		ui:       ui,
		logger:   log,
	}, nil
}

// Run starts the background workers and shows the UI until the user quits
// or ctx is cancelled. The vault key is wiped on return.
func (a *App) Run(ctx context.Context) error {
	traceID := utils.NewUUIDGenerator().Generate()
	log := a.logger.WithTraceID(traceID)
	ctx = log.WithContext(utils.WithTraceID(ctx, traceID))

	log.Info().Msg("client started")

	a.workers.Start(ctx)
	defer a.workers.Stop()
	defer a.services.AuthService.Logout()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		log.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	log.Info().Msg("client stopped")
	return nil
}

// Close releases the local cache. The session is locked first in case Run
// was never called.
func (a *App) Close() error {
	a.session.Lock()
	return a.storages.Close()
}
