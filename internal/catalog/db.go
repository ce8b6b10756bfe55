// ABOUTME: Catalog database connection and schema management.
// ABOUTME: Handles XDG paths, SQLite initialization, and migrations.

package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    archive_path TEXT NOT NULL,
    storage_dir TEXT NOT NULL DEFAULT '',
    cards INTEGER NOT NULL DEFAULT 0,
    attachments INTEGER NOT NULL DEFAULT 0,
    digest TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE VIRTUAL TABLE IF NOT EXISTS decks_fts USING fts5(
    name, content='decks', content_rowid='rowid'
);

CREATE TRIGGER IF NOT EXISTS decks_ai AFTER INSERT ON decks BEGIN
    INSERT INTO decks_fts(rowid, name) VALUES (NEW.rowid, NEW.name);
END;

CREATE TRIGGER IF NOT EXISTS decks_ad AFTER DELETE ON decks BEGIN
    INSERT INTO decks_fts(decks_fts, rowid, name) VALUES('delete', OLD.rowid, OLD.name);
END;

CREATE TRIGGER IF NOT EXISTS decks_au AFTER UPDATE ON decks BEGIN
    INSERT INTO decks_fts(decks_fts, rowid, name) VALUES('delete', OLD.rowid, OLD.name);
    INSERT INTO decks_fts(rowid, name) VALUES (NEW.rowid, NEW.name);
END;
`

func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "flashdeck")
}

func DefaultPath() string {
	return filepath.Join(DataDir(), "catalog.db")
}
