// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	accountsTable = models.Account{}.TableName()
	entriesTable  = models.VaultEntry{}.TableName()

	accountColumns = []string{"email", "encryption_salt", "kdf_iterations", "updated_at"}
	entryColumns   = []string{
		"id",
		"title",
		"username",
		"url",
		"notes",
		"encrypted_password",
		"iv",
		"created_at",
		"updated_at",
	}
)

// sqlite uses "?" placeholders, squirrel's default.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetAccount(email string) (string, []any, error) {
	return builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSaveAccount(a models.Account) (string, []any, error) {
	return builder.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(a.Email, a.EncryptionSalt, a.KDFIterations, a.UpdatedAt).
		Suffix(`ON CONFLICT(email) DO UPDATE SET
			encryption_salt = excluded.encryption_salt,
			kdf_iterations  = excluded.kdf_iterations,
			updated_at      = excluded.updated_at`).
		ToSql()
}

func buildUpsertEntry(email string, e models.VaultEntry) (string, []any, error) {
	return builder.
		Insert(entriesTable).
		Columns(append([]string{"account_email"}, entryColumns...)...).
		Values(email, e.ID, e.Title, e.Username, e.URL, e.Notes, e.EncryptedPassword, e.IV, e.CreatedAt, e.UpdatedAt).
		Suffix(`ON CONFLICT(account_email, id) DO UPDATE SET
			title              = excluded.title,
			username           = excluded.username,
			url                = excluded.url,
			notes              = excluded.notes,
			encrypted_password = excluded.encrypted_password,
			iv                 = excluded.iv,
			created_at         = excluded.created_at,
			updated_at         = excluded.updated_at`).
		ToSql()
}

func buildDeleteEntry(email string, id int64) (string, []any, error) {
	return builder.
		Delete(entriesTable).
		Where(sq.Eq{"account_email": email, "id": id}).
		ToSql()
}

func buildDeleteAllEntries(email string) (string, []any, error) {
	return builder.
		Delete(entriesTable).
		Where(sq.Eq{"account_email": email}).
		ToSql()
}

func buildListEntries(email string) (string, []any, error) {
	return builder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"account_email": email}).
		OrderBy("title COLLATE NOCASE", "id").
		ToSql()
}
