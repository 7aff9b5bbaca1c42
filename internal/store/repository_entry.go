package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// entryRepository is the SQLite-backed implementation of [EntryRepository].
// Rows are scoped by account email so several accounts can share one cache
// file.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceEntries deletes every cached entry of email and inserts entries in
// one transaction. On any failure the transaction is rolled back and the
// previous cache content survives.
func (r *entryRepository) ReplaceEntries(ctx context.Context, email string, entries []models.VaultEntry) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ReplaceEntries").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := buildDeleteAllEntries(email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*entryRepository.ReplaceEntries").Msg("error clearing entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, entry := range entries {
		if err = upsertEntry(ctx, tx, email, entry); err != nil {
			log.Err(err).Str("func", "*entryRepository.ReplaceEntries").Int64("id", entry.ID).Msg("error inserting entry")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*entryRepository.ReplaceEntries").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "*entryRepository.ReplaceEntries").Int("count", len(entries)).Msg("entries cached")
	return nil
}

func (r *entryRepository) UpsertEntry(ctx context.Context, email string, entry models.VaultEntry) error {
	if err := upsertEntry(ctx, r.db, email, entry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryRepository.UpsertEntry").Int64("id", entry.ID).Msg("error saving entry")
		return err
	}
	return nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, email string, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntry(email, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Int64("id", id).Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *entryRepository) ListEntries(ctx context.Context, email string) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntries(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error querying entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		var e models.VaultEntry
		if err = rows.Scan(&e.ID, &e.Title, &e.Username, &e.URL, &e.Notes, &e.EncryptedPassword, &e.IV, &e.CreatedAt, &e.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("error scanning entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertEntry(ctx context.Context, db execer, email string, entry models.VaultEntry) error {
	query, args, err := buildUpsertEntry(email, entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
