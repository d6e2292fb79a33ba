package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// List columns (directions, services, contacts) hold JSON arrays.
const schemaClients = `
CREATE TABLE IF NOT EXISTS clients (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL,
    name TEXT NOT NULL,
    edrpou TEXT NOT NULL DEFAULT '',
    vat TEXT NOT NULL DEFAULT '',
    city TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    sales TEXT NOT NULL DEFAULT '',
    holding TEXT NOT NULL DEFAULT '',
    last_contact TEXT NOT NULL DEFAULT '',
    website TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    source TEXT NOT NULL DEFAULT '',
    company_type TEXT NOT NULL DEFAULT '',
    directions TEXT NOT NULL DEFAULT '[]',
    services TEXT NOT NULL DEFAULT '[]',
    cargo TEXT NOT NULL DEFAULT '',
    what_ships TEXT NOT NULL DEFAULT '',
    working_since TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    contacts TEXT NOT NULL DEFAULT '[]',
    updated_at TIMESTAMP NOT NULL
);
`

const schemaQuotations = `
CREATE TABLE IF NOT EXISTS quotations (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL,
    date TEXT NOT NULL,
    origin TEXT NOT NULL,
    destination TEXT NOT NULL,
    container_type TEXT NOT NULL,
    freight REAL NOT NULL DEFAULT 0,
    dpp REAL NOT NULL DEFAULT 0,
    forwarding REAL NOT NULL DEFAULT 0,
    t1 REAL NOT NULL DEFAULT 0,
    auto REAL NOT NULL DEFAULT 0,
    rail REAL NOT NULL DEFAULT 0,
    total REAL NOT NULL DEFAULT 0,
    shipping_line TEXT NOT NULL DEFAULT '',
    agent TEXT NOT NULL DEFAULT '',
    sales TEXT NOT NULL DEFAULT '',
    transit_days INTEGER NOT NULL DEFAULT 0,
    client_id TEXT REFERENCES clients(id) ON DELETE SET NULL,
    client_name TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP NOT NULL
);
`

const indexQuotationsRoute = `
CREATE INDEX IF NOT EXISTS idx_quotations_route
    ON quotations (container_type, date);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaClients,
		schemaQuotations,
		indexQuotationsRoute,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
