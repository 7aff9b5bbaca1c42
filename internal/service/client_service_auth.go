package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	accounts store.AccountRepository
	entries  store.EntryRepository
	session  VaultSession
	current  *accountState

	validator         validators.Validator
	defaultIterations int
	logger            *logger.Logger
}

func newClientAuthService(
	serverAdapter adapter.ServerAdapter,
	accounts store.AccountRepository,
	entries store.EntryRepository,
	vaultSession VaultSession,
	current *accountState,
	defaultIterations int,
	log *logger.Logger,
) ClientAuthService {
	if defaultIterations <= 0 {
		defaultIterations = crypto.DefaultIterations
	}
	return &clientAuthService{
		adapter:           serverAdapter,
		accounts:          accounts,
		entries:           entries,
		session:           vaultSession,
		current:           current,
		validator:         validators.NewEntryValidator(),
		defaultIterations: defaultIterations,
		logger:            log,
	}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) (models.Account, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return models.Account{}, mapAdapterError(err)
	}

	return a.establish(ctx, creds.Email, token)
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Account{}, mapAdapterError(err)
	}

	return a.establish(ctx, creds.Email, token)
}

// establish resolves and pins the KDF parameters of a freshly authenticated
// account and makes it current.
func (a *clientAuthService) establish(ctx context.Context, email string, token models.AuthToken) (models.Account, error) {
	log := logger.FromContext(ctx)

	account := models.Account{
		Email:          email,
		EncryptionSalt: token.EncryptionSalt,
		KDFIterations:  token.KDFIterations,
	}

	// older servers only expose the salt through /me
	if account.EncryptionSalt == "" {
		me, err := a.adapter.Me(ctx)
		if err != nil {
			return models.Account{}, mapAdapterError(err)
		}
		account.EncryptionSalt = me.EncryptionSalt
		if account.KDFIterations == 0 {
			account.KDFIterations = me.KDFIterations
		}
	}
	if account.EncryptionSalt == "" {
		return models.Account{}, fmt.Errorf("%w: server returned no encryption salt", ErrInvalidDataProvided)
	}

	account.KDFIterations = a.resolveIterations(ctx, account)

	if err := a.accounts.SaveAccount(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("pin kdf parameters: %w", err)
	}

	// a key of a previous account must not survive the switch
	a.session.Lock()
	a.current.set(account)

	log.Info().Str("func", "*clientAuthService.establish").
		Int("kdf_iterations", account.KDFIterations).
		Msg("account authenticated")
	return account, nil
}

// resolveIterations picks the iteration count in this order: the value the
// server pinned, the value cached for the same salt, the configured default.
// A cached account with a different salt has its entries dropped first,
// whichever value wins.
func (a *clientAuthService) resolveIterations(ctx context.Context, account models.Account) int {
	log := logger.FromContext(ctx)

	cachedIters := 0
	cached, err := a.accounts.GetAccount(ctx, account.Email)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
	case err != nil:
		log.Warn().Err(err).Str("func", "*clientAuthService.resolveIterations").Msg("cannot read cached account")
	case cached.EncryptionSalt != account.EncryptionSalt:
		// the account was recreated on the server; cached envelopes belong
		// to a key that no longer exists
		log.Warn().Str("func", "*clientAuthService.resolveIterations").Msg("account salt changed, dropping cached entries")
		if err = a.entries.ReplaceEntries(ctx, account.Email, nil); err != nil {
			log.Warn().Err(err).Str("func", "*clientAuthService.resolveIterations").Msg("cannot drop stale entries")
		}
	default:
		cachedIters = cached.KDFIterations
	}

	switch {
	case account.KDFIterations > 0:
		return account.KDFIterations
	case cachedIters > 0:
		return cachedIters
	}
	return a.defaultIterations
}

func (a *clientAuthService) Unlock(ctx context.Context, masterPassword models.Secret) error {
	account, ok := a.current.get()
	if !ok {
		return ErrNotLoggedIn
	}

	if err := a.session.UnlockWithParams(masterPassword.Reveal(), account.KDFParams()); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}

	return a.verifyKey(ctx, account.Email)
}

// verifyKey decrypts the secret of one known entry. A key derived from the
// wrong master password fails there with ErrAuthenticationFailed; without
// any entry there is nothing to check against.
func (a *clientAuthService) verifyKey(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	entries, err := a.entries.ListEntries(ctx, email)
	if err != nil {
		log.Warn().Err(err).Str("func", "*clientAuthService.verifyKey").Msg("cannot read cached entries")
	}
	if len(entries) == 0 {
		entries, err = a.adapter.ListEntries(ctx)
		if err != nil {
			log.Warn().Err(err).Str("func", "*clientAuthService.verifyKey").Msg("cannot fetch entries to verify key")
			return nil
		}
		if err = a.entries.ReplaceEntries(ctx, email, entries); err != nil {
			log.Warn().Err(err).Str("func", "*clientAuthService.verifyKey").Msg("cannot cache entries")
		}
	}
	if len(entries) == 0 {
		return nil
	}

	plaintext, err := a.session.DecryptField(entries[0].Envelope())
	crypto.Wipe(plaintext)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		a.session.Lock()
		return ErrWrongMasterPassword
	default:
		log.Warn().Err(err).Str("func", "*clientAuthService.verifyKey").Int64("id", entries[0].ID).Msg("cannot verify key against entry")
		return nil
	}
}

func (a *clientAuthService) Lock() {
	a.session.Lock()
}

func (a *clientAuthService) Logout() {
	a.session.Lock()
	a.adapter.SetToken("")
	a.current.clear()
	a.logger.Info().Str("func", "*clientAuthService.Logout").Msg("logged out")
}

func (a *clientAuthService) State() session.State {
	return a.session.State()
}

func (a *clientAuthService) Account() (models.Account, bool) {
	return a.current.get()
}
