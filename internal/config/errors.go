package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates an iteration count below the floor or
	// an unknown sensitive field.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero auto-lock interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
