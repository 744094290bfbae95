package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/migrations"
)

// DB is the shared mirror database handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an open connection, e.g. a sqlmock one in tests.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
