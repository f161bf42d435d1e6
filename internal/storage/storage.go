// Package storage persists a book in a single SQLite database. It is
// the data-loading collaborator the core packages assume: everything
// is read eagerly into a book.Book snapshot, and the pure core never
// touches the database.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store wraps the book database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) a book database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("book path is empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating book directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening book database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging book database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

const schema = `
CREATE TABLE IF NOT EXISTS commodities (
	guid           CHAR(32) PRIMARY KEY NOT NULL,
	namespace      TEXT NOT NULL,
	mnemonic       TEXT NOT NULL,
	fullname       TEXT NOT NULL DEFAULT '',
	UNIQUE (namespace, mnemonic)
);

CREATE TABLE IF NOT EXISTS accounts (
	guid           CHAR(32) PRIMARY KEY NOT NULL,
	name           TEXT NOT NULL,
	account_type   TEXT NOT NULL,
	commodity_guid CHAR(32),
	parent_guid    CHAR(32),
	code           TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	hidden         INTEGER NOT NULL DEFAULT 0,
	placeholder    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
	guid           CHAR(32) PRIMARY KEY NOT NULL,
	currency_guid  CHAR(32) NOT NULL,
	post_date      TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS splits (
	guid           CHAR(32) PRIMARY KEY NOT NULL,
	tx_guid        CHAR(32) NOT NULL REFERENCES transactions (guid),
	account_guid   CHAR(32) NOT NULL REFERENCES accounts (guid),
	value_num      INTEGER NOT NULL,
	value_denom    INTEGER NOT NULL,
	quantity_num   INTEGER NOT NULL,
	quantity_denom INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_splits_account ON splits (account_guid);
CREATE INDEX IF NOT EXISTS idx_splits_tx ON splits (tx_guid);

CREATE TABLE IF NOT EXISTS prices (
	guid           CHAR(32) PRIMARY KEY NOT NULL,
	commodity_guid CHAR(32) NOT NULL,
	currency_guid  CHAR(32) NOT NULL,
	date           TEXT NOT NULL,
	value_num      INTEGER NOT NULL,
	value_denom    INTEGER NOT NULL,
	source         TEXT NOT NULL DEFAULT '',
	UNIQUE (commodity_guid, currency_guid, date)
);
`

// Migrate creates the schema. Safe to run on every open.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrating book schema: %w", err)
	}
	return nil
}
