package journal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps the journal blob in a single named slot of a
// key-value table, the way a browser keeps a localStorage entry. One
// upsert per mutation, so the blob is never half-written.
type SQLiteBackend struct {
	db   *sql.DB
	slot string
}

// OpenSQLite opens (or creates) the database at path and ensures the
// slot table exists.
func OpenSQLite(path, slot string) (*SQLiteBackend, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			name  TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &SQLiteBackend{db: db, slot: slot}, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Load() ([]byte, error) {
	row := b.db.QueryRow(`SELECT value FROM slots WHERE name = ?`, b.slot)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot %s: %w", b.slot, err)
	}
	return []byte(value), nil
}

func (b *SQLiteBackend) Save(raw []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO slots (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, b.slot, string(raw))
	if err != nil {
		return fmt.Errorf("write slot %s: %w", b.slot, err)
	}
	return nil
}
