package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientVaultService struct {
	adapter   adapter.ServerAdapter
	entries   store.EntryRepository
	session   VaultSession
	policy    FieldPolicy
	current   *accountState
	validator validators.Validator
	logger    *logger.Logger
}

func newClientVaultService(
	serverAdapter adapter.ServerAdapter,
	entries store.EntryRepository,
	vaultSession VaultSession,
	policy FieldPolicy,
	current *accountState,
	log *logger.Logger,
) ClientVaultService {
	return &clientVaultService{
		adapter:   serverAdapter,
		entries:   entries,
		session:   vaultSession,
		policy:    policy,
		current:   current,
		validator: validators.NewEntryValidator(),
		logger:    log,
	}
}

func (v *clientVaultService) List(ctx context.Context) ([]models.VaultEntry, bool, error) {
	log := logger.FromContext(ctx)

	account, ok := v.current.get()
	if !ok {
		return nil, false, ErrNotLoggedIn
	}

	entries, err := v.adapter.ListEntries(ctx)
	if err == nil {
		sortEntries(entries)
		if cacheErr := v.entries.ReplaceEntries(ctx, account.Email, entries); cacheErr != nil {
			log.Warn().Err(cacheErr).Str("func", "*clientVaultService.List").Msg("cannot refresh cache")
		}
		return entries, false, nil
	}

	mapped := mapAdapterError(err)
	if !errors.Is(mapped, ErrServerUnavailable) {
		return nil, false, mapped
	}

	cached, cacheErr := v.entries.ListEntries(ctx, account.Email)
	if cacheErr != nil {
		log.Err(cacheErr).Str("func", "*clientVaultService.List").Msg("cannot read cache")
		return nil, false, mapped
	}

	log.Warn().Err(err).Str("func", "*clientVaultService.List").Int("count", len(cached)).Msg("server unreachable, using cache")
	return cached, true, nil
}

func sortEntries(entries []models.VaultEntry) {
	slices.SortStableFunc(entries, func(a, b models.VaultEntry) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

func (v *clientVaultService) Search(entries []models.VaultEntry, query string) []models.VaultEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return slices.Clone(entries)
	}

	matches := func(value string) bool {
		return !models.IsSealed(value) && strings.Contains(strings.ToLower(value), query)
	}

	found := make([]models.VaultEntry, 0, len(entries))
	for _, e := range entries {
		if matches(e.Title) || matches(e.Username) || matches(e.URL) {
			found = append(found, e)
		}
	}
	return found
}

func (v *clientVaultService) Reveal(entry models.VaultEntry) (models.PlainEntry, error) {
	plain, err := v.policy.Open(v.session, entry)
	if err != nil {
		return models.PlainEntry{}, mapSessionError(err)
	}
	return plain, nil
}

func (v *clientVaultService) Create(ctx context.Context, plain models.PlainEntry) (models.VaultEntry, error) {
	account, err := v.prepare(ctx, plain)
	if err != nil {
		return models.VaultEntry{}, err
	}

	sealed, err := v.policy.Seal(v.session, plain)
	if err != nil {
		return models.VaultEntry{}, mapSessionError(err)
	}

	created, err := v.adapter.CreateEntry(ctx, sealed)
	if err != nil {
		return models.VaultEntry{}, mapAdapterError(err)
	}

	v.cacheEntry(ctx, account.Email, created)
	return created, nil
}

func (v *clientVaultService) Update(ctx context.Context, plain models.PlainEntry) (models.VaultEntry, error) {
	account, err := v.prepare(ctx, plain,
		validators.FieldID, validators.FieldTitle, validators.FieldUsername, validators.FieldURL, validators.FieldNotes)
	if err != nil {
		return models.VaultEntry{}, err
	}

	sealed, err := v.policy.Seal(v.session, plain)
	if err != nil {
		return models.VaultEntry{}, mapSessionError(err)
	}

	updated, err := v.adapter.UpdateEntry(ctx, sealed)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrEntryNotFound) {
			v.uncacheEntry(ctx, account.Email, plain.ID)
		}
		return models.VaultEntry{}, err
	}

	v.cacheEntry(ctx, account.Email, updated)
	return updated, nil
}

func (v *clientVaultService) Delete(ctx context.Context, id int64) error {
	account, ok := v.current.get()
	if !ok {
		return ErrNotLoggedIn
	}
	if v.session.State() != session.Unlocked {
		return ErrVaultLocked
	}

	if err := v.adapter.DeleteEntry(ctx, id); err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrEntryNotFound) {
			v.uncacheEntry(ctx, account.Email, id)
		}
		return err
	}

	v.uncacheEntry(ctx, account.Email, id)
	return nil
}

func (v *clientVaultService) GeneratePassword(ctx context.Context, settings models.GeneratorSettings) (models.Secret, error) {
	if err := v.validator.Validate(ctx, settings); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidGeneratorSettings, err)
	}

	generated, err := v.adapter.GeneratePassword(ctx, settings)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return generated.Password, nil
}

// prepare checks the preconditions shared by Create and Update. fields
// scope the entry validation; none means every entry field but the id.
func (v *clientVaultService) prepare(ctx context.Context, plain models.PlainEntry, fields ...string) (models.Account, error) {
	if err := v.validator.Validate(ctx, plain, fields...); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	account, ok := v.current.get()
	if !ok {
		return models.Account{}, ErrNotLoggedIn
	}
	if v.session.State() != session.Unlocked {
		return models.Account{}, ErrVaultLocked
	}
	return account, nil
}

func (v *clientVaultService) cacheEntry(ctx context.Context, email string, entry models.VaultEntry) {
	if err := v.entries.UpsertEntry(ctx, email, entry); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*clientVaultService.cacheEntry").Int64("id", entry.ID).Msg("cannot cache entry")
	}
}

func (v *clientVaultService) uncacheEntry(ctx context.Context, email string, id int64) {
	if err := v.entries.DeleteEntry(ctx, email, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*clientVaultService.uncacheEntry").Int64("id", id).Msg("cannot remove cached entry")
	}
}

// mapSessionError turns key-related failures into UI errors. A failed
// authentication while unlocked means the stored data was altered.
func mapSessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionLocked):
		return ErrVaultLocked
	case errors.Is(err, crypto.ErrAuthenticationFailed), errors.Is(err, crypto.ErrMalformedInput):
		return fmt.Errorf("%w: %w", ErrCorruptedEntry, err)
	}
	return err
}
