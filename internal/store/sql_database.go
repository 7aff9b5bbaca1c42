package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// sqliteDialect is the goose dialect of the local cache.
const sqliteDialect = "sqlite3"

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, sqliteDialect)
}
