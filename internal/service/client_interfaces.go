package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// FieldCipher encrypts and decrypts single entry fields with the key held by
// an unlocked session.
type FieldCipher interface {
	EncryptField(plaintext []byte) (models.Envelope, error)
	DecryptField(env models.Envelope) ([]byte, error)
}

// VaultSession is the part of [session.Session] the services depend on.
type VaultSession interface {
	FieldCipher

	UnlockWithParams(password string, params models.KDFParams) error
	Lock()
	State() session.State
}

// ClientAuthService defines the client-side contract for account
// authentication and for locking and unlocking the vault key.
type ClientAuthService interface {
	// Register creates an account on the server, pins its KDF parameters in
	// the local cache and makes it the current account. The vault stays
	// locked.
	Register(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Login authenticates with the account password, pins the account's KDF
	// parameters and makes it the current account. The vault stays locked.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// Unlock derives the vault key of the current account from the master
	// password. If any entry is known, the key is checked against it and
	// [ErrWrongMasterPassword] is returned (with the session locked) when it
	// does not authenticate.
	Unlock(ctx context.Context, masterPassword models.Secret) error

	// Lock wipes the vault key. The account stays logged in.
	Lock()

	// Logout wipes the vault key, forgets the bearer token and the current
	// account.
	Logout()

	// State reports whether the vault key is held.
	State() session.State

	// Account returns the current account, if any.
	Account() (models.Account, bool)
}

// ClientVaultService defines the client-side contract for managing vault
// entries. Entries leave the client sealed according to the field policy;
// every mutation goes to the server first and is mirrored into the local
// cache.
type ClientVaultService interface {
	// List returns the entries of the current account from the server and
	// refreshes the cache. When the server is unreachable the cached entries
	// are returned with offline set to true.
	List(ctx context.Context) (entries []models.VaultEntry, offline bool, err error)

	// Search filters entries by a case-insensitive substring of the title,
	// username or url. Sealed fields never match. An empty query returns
	// every entry.
	Search(entries []models.VaultEntry, query string) []models.VaultEntry

	// Reveal decrypts every sealed field of entry.
	Reveal(entry models.VaultEntry) (models.PlainEntry, error)

	// Create seals plain and stores it as a new entry.
	Create(ctx context.Context, plain models.PlainEntry) (models.VaultEntry, error)

	// Update seals plain and replaces the entry plain.ID.
	Update(ctx context.Context, plain models.PlainEntry) (models.VaultEntry, error)

	// Delete removes the entry with the given id.
	Delete(ctx context.Context, id int64) error

	// GeneratePassword asks the server-side generator for a password.
	GeneratePassword(ctx context.Context, settings models.GeneratorSettings) (models.Secret, error)
}
