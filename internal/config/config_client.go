package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogPath is the log file path; empty means next to the executable.
	LogPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the vault server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the local cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientVault holds key derivation and field policy settings.
type ClientVault struct {
	// KDFIterations is used for accounts without a pinned count.
	KDFIterations int
	// SensitiveFields are the optional fields sealed next to the secret value.
	SensitiveFields []models.EntryField
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoLockTimeout is the idle time before the vault locks. Zero disables it.
	AutoLockTimeout time.Duration
	// AutoLockInterval defines how often the idle time is checked.
	AutoLockInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains process-level settings.
	App ClientApp
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Vault contains key derivation and field policy settings.
	Vault ClientVault
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	fields := make([]models.EntryField, 0, len(cfg.Vault.SensitiveFields))
	for _, name := range cfg.Vault.SensitiveFields {
		field, err := models.ParseEntryField(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidVaultConfigs, err)
		}
		fields = append(fields, field)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogPath: cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Vault: ClientVault{
			KDFIterations:   cfg.Vault.KDFIterations,
			SensitiveFields: fields,
		},
		Workers: ClientWorkers{
			AutoLockTimeout:  cfg.Workers.AutoLockTimeout,
			AutoLockInterval: cfg.Workers.AutoLockInterval,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
