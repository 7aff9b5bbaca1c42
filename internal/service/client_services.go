package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
	FieldPolicy  FieldPolicy
}

func NewClientServices(
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	vaultSession VaultSession,
	vaultCfg config.ClientVault,
	log *logger.Logger,
) *ClientServices {
	current := &accountState{}
	policy := NewFieldPolicy(vaultCfg.SensitiveFields)

	return &ClientServices{
		AuthService: newClientAuthService(
			serverAdapter,
			localStore.AccountRepository,
			localStore.EntryRepository,
			vaultSession,
			current,
			vaultCfg.KDFIterations,
			log,
		),
		VaultService: newClientVaultService(
			serverAdapter,
			localStore.EntryRepository,
			vaultSession,
			policy,
			current,
			log,
		),
		FieldPolicy: policy,
	}
}
