package config

import (
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

const (
	defaultHTTPAddress      = "http://localhost:8000"
	defaultRequestTimeout   = 15 * time.Second
	defaultDSN              = "file:vault.db?_foreign_keys=on"
	defaultAutoLockTimeout  = 5 * time.Minute
	defaultAutoLockInterval = 10 * time.Second
)

// defaults returns the lowest-precedence configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Vault: Vault{
			KDFIterations: crypto.DefaultIterations,
		},
		Workers: Workers{
			AutoLockTimeout:  defaultAutoLockTimeout,
			AutoLockInterval: defaultAutoLockInterval,
		},
	}
}
