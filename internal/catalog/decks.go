// ABOUTME: Catalog operations for deck records.
// ABOUTME: Provides upsert, prefix-based lookup, listing and removal.

package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harper/flashdeck/internal/models"
)

var ErrPrefixTooShort = errors.New("prefix must be at least 6 characters")
var ErrAmbiguousPrefix = errors.New("prefix matches multiple decks")
var ErrDeckNotFound = errors.New("deck not found")

const deckColumns = `id, name, archive_path, storage_dir, cards, attachments, digest, created_at, updated_at`

// UpsertDeck inserts rec or, when a record with the same ID exists, replaces
// everything but its creation time.
func UpsertDeck(db *sql.DB, rec *models.DeckRecord) error {
	_, err := db.Exec(
		`INSERT INTO decks (`+deckColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     name = excluded.name,
		     archive_path = excluded.archive_path,
		     storage_dir = excluded.storage_dir,
		     cards = excluded.cards,
		     attachments = excluded.attachments,
		     digest = excluded.digest,
		     updated_at = excluded.updated_at`,
		rec.ID.String(), rec.Name, rec.ArchivePath, rec.StorageDir,
		rec.Cards, rec.Attachments, rec.Digest, rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDeck(row scanner) (*models.DeckRecord, error) {
	rec := &models.DeckRecord{}
	var idStr string
	if err := row.Scan(&idStr, &rec.Name, &rec.ArchivePath, &rec.StorageDir,
		&rec.Cards, &rec.Attachments, &rec.Digest, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	var parseErr error
	rec.ID, parseErr = uuid.Parse(idStr)
	if parseErr != nil {
		return nil, fmt.Errorf("invalid deck ID in database: %w", parseErr)
	}
	return rec, nil
}

func collectDecks(rows *sql.Rows) ([]*models.DeckRecord, error) {
	defer func() { _ = rows.Close() }()

	var decks []*models.DeckRecord
	for rows.Next() {
		rec, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return decks, nil
}

func GetDeck(db *sql.DB, id uuid.UUID) (*models.DeckRecord, error) {
	rec, err := scanDeck(db.QueryRow(
		`SELECT `+deckColumns+` FROM decks WHERE id = ?`,
		id.String(),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeckNotFound
	}
	return rec, err
}

func GetDeckByPrefix(db *sql.DB, prefix string) (*models.DeckRecord, error) {
	if len(prefix) < 6 {
		return nil, ErrPrefixTooShort
	}

	rows, err := db.Query(
		`SELECT `+deckColumns+` FROM decks WHERE id LIKE ?`,
		prefix+"%",
	)
	if err != nil {
		return nil, err
	}
	decks, err := collectDecks(rows)
	if err != nil {
		return nil, err
	}

	if len(decks) == 0 {
		return nil, ErrDeckNotFound
	}
	if len(decks) > 1 {
		return nil, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(decks))
	}
	return decks[0], nil
}

// GetDeckByArchive returns the record whose archive lives at path.
func GetDeckByArchive(db *sql.DB, path string) (*models.DeckRecord, error) {
	rec, err := scanDeck(db.QueryRow(
		`SELECT `+deckColumns+` FROM decks WHERE archive_path = ?
		 ORDER BY updated_at DESC LIMIT 1`,
		path,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeckNotFound
	}
	return rec, err
}

func ListDecks(db *sql.DB, limit int) ([]*models.DeckRecord, error) {
	rows, err := db.Query(
		`SELECT `+deckColumns+` FROM decks ORDER BY updated_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return collectDecks(rows)
}

func CountDecks(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM decks`).Scan(&count)
	return count, err
}

// UpdateDigest records a new archive digest for the deck.
func UpdateDigest(db *sql.DB, id uuid.UUID, digest string) error {
	result, err := db.Exec(
		`UPDATE decks SET digest = ?, updated_at = ? WHERE id = ?`,
		digest, time.Now(), id.String(),
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeckNotFound
	}
	return nil
}

// DeleteDecksAtArchive removes every record for the archive at path except
// the one with id keep, returning how many were removed.
func DeleteDecksAtArchive(db *sql.DB, path string, keep uuid.UUID) (int64, error) {
	result, err := db.Exec(
		`DELETE FROM decks WHERE archive_path = ? AND id != ?`,
		path, keep.String(),
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func DeleteDeck(db *sql.DB, id uuid.UUID) error {
	result, err := db.Exec(`DELETE FROM decks WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeckNotFound
	}
	return nil
}
