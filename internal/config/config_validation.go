// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Vault.KDFIterations < crypto.MinIterations {
		return fmt.Errorf("%w: kdf iterations %d below %d", ErrInvalidVaultConfigs, cfg.Vault.KDFIterations, crypto.MinIterations)
	}
	for _, field := range cfg.Vault.SensitiveFields {
		if field == models.FieldTitle {
			return fmt.Errorf("%w: title cannot be sealed", ErrInvalidVaultConfigs)
		}
	}

	if cfg.Workers.AutoLockTimeout < 0 || cfg.Workers.AutoLockInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
