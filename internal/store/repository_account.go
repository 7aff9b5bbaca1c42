package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// accountRepository is the SQLite-backed implementation of
// [AccountRepository].
type accountRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// GetAccount looks the account descriptor up by email.
//
// Error handling:
//   - no row → [ErrAccountNotFound].
//   - query build failure → [ErrBuildingSQLQuery].
//   - any other driver-level error → [ErrExecutingQuery].
func (r *accountRepository) GetAccount(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAccount(email)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetAccount").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&account.Email, &account.EncryptionSalt, &account.KDFIterations, &account.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrAccountNotFound
	case err != nil:
		log.Err(err).Str("func", "*accountRepository.GetAccount").Msg("error reading account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// SaveAccount upserts the descriptor and stamps UpdatedAt with the current
// UTC time.
func (r *accountRepository) SaveAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	account.UpdatedAt = r.now().UTC()
	query, args, err := buildSaveAccount(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.SaveAccount").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.SaveAccount").Msg("error saving account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*accountRepository.SaveAccount").
		Int("kdf_iterations", account.KDFIterations).
		Msg("account descriptor cached")
	return nil
}
