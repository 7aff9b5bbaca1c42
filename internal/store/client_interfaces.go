package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AccountRepository caches account descriptors, most importantly the KDF
// parameters pinned to each account.
type AccountRepository interface {
	// GetAccount returns the cached descriptor of email or
	// [ErrAccountNotFound].
	GetAccount(ctx context.Context, email string) (models.Account, error)

	// SaveAccount inserts or replaces the descriptor of account.Email.
	SaveAccount(ctx context.Context, account models.Account) error
}

// EntryRepository caches the envelopes of an account's entries so the list
// can be shown offline. Plaintext secrets are never passed to it.
type EntryRepository interface {
	// ReplaceEntries atomically replaces every cached entry of email.
	ReplaceEntries(ctx context.Context, email string, entries []models.VaultEntry) error

	// UpsertEntry inserts or replaces one entry of email.
	UpsertEntry(ctx context.Context, email string, entry models.VaultEntry) error

	// DeleteEntry removes one entry of email. Removing a missing entry is
	// not an error.
	DeleteEntry(ctx context.Context, email string, id int64) error

	// ListEntries returns the cached entries of email ordered by title.
	ListEntries(ctx context.Context, email string) ([]models.VaultEntry, error)
}
