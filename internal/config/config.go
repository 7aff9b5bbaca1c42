// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault client. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the vault server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Vault holds key derivation and field policy settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogPath is the file the client logs to. Empty means a "logs" file next
	// to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds the connection settings of the vault server.
type Adapter struct {
	// HTTPAddress is the base URL of the server. A bare "host:port" is
	// accepted and treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local cache.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:vault.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Vault holds key derivation and field policy settings.
type Vault struct {
	// KDFIterations is the PBKDF2 work factor used for accounts that have no
	// pinned count yet.
	// Env: VAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// SensitiveFields lists the optional entry fields that are sealed before
	// leaving the client, in addition to the secret value
	// (e.g. "username,notes").
	// Env: VAULT_SENSITIVE_FIELDS
	SensitiveFields []string `env:"SENSITIVE_FIELDS" envSeparator:","`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// AutoLockTimeout is the idle time after which the vault is locked.
	// Zero disables auto-lock.
	// Env: WORKERS_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// AutoLockInterval is how often the idle time is checked.
	// Env: WORKERS_AUTO_LOCK_INTERVAL
	AutoLockInterval time.Duration `env:"AUTO_LOCK_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Earlier sources take precedence for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
