// ABOUTME: Glue between deck archives on disk and their catalog entries.
// ABOUTME: Records saved decks, resolves user references, and edits in place.

package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/flashdeck/internal/archive"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/models"
)

// RecordDeck upserts the entry for d saved at archivePath. An existing entry
// keeps its creation time. Entries of other decks that pointed at the same
// archive are dropped, since the file on disk no longer holds them.
func RecordDeck(db *sql.DB, d *deck.Deck, archivePath, storageDir string) (*models.DeckRecord, error) {
	id, err := uuid.Parse(d.ID())
	if err != nil {
		return nil, fmt.Errorf("deck id: %w", err)
	}

	absPath, err := filepath.Abs(archivePath)
	if err != nil {
		return nil, err
	}

	digest, err := archive.Digest(absPath)
	if err != nil {
		return nil, fmt.Errorf("digest archive: %w", err)
	}

	replaced, err := DeleteDecksAtArchive(db, absPath, id)
	if err != nil {
		return nil, err
	}
	if replaced > 0 {
		log.Warn("archive now holds a different deck", "path", absPath, "deck", id, "dropped", replaced)
	}

	rec, err := GetDeck(db, id)
	switch {
	case errors.Is(err, ErrDeckNotFound):
		rec = models.NewDeckRecord(id, d.Name(), absPath)
	case err != nil:
		return nil, err
	default:
		rec.Name = d.Name()
		rec.ArchivePath = absPath
		rec.Touch()
	}

	rec.StorageDir = storageDir
	rec.Cards = len(d.Cards())
	rec.Attachments = d.Attachments().Len()
	rec.Digest = digest

	if err := UpsertDeck(db, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Resolve finds the entry named by ref: a full deck id, a path to an archive
// on disk, or an id prefix of at least six characters.
func Resolve(db *sql.DB, ref string) (*models.DeckRecord, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return GetDeck(db, id)
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		absPath, err := filepath.Abs(ref)
		if err != nil {
			return nil, err
		}
		return GetDeckByArchive(db, absPath)
	}

	return GetDeckByPrefix(db, ref)
}

// OpenAvailable opens every attachment whose file came out of the archive.
// Entries saved while closed have no file and stay closed, keeping their
// metadata.
func OpenAvailable(d *deck.Deck, storageDir string) error {
	dir := filepath.Join(storageDir, deck.StorageDirName)
	for _, a := range d.Attachments().All() {
		err := a.Open(dir)
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("attachment has no stored file", "deck", d.ID(), "attachment", a.ID())
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// EditDeck loads the archive, applies edit with its attachments open, saves
// the result next to the original archive and records it. The saved path
// follows the deck name, so a renamed archive is rewritten under its
// canonical file name.
func EditDeck(db *sql.DB, archivePath, storageDir string, edit func(*deck.Deck) error) (*models.DeckRecord, error) {
	d, err := deck.Load(archivePath, storageDir)
	if err != nil {
		return nil, err
	}
	defer d.CloseAttachments()

	if err := OpenAvailable(d, storageDir); err != nil {
		return nil, err
	}

	if err := edit(d); err != nil {
		return nil, err
	}

	dir := filepath.Dir(archivePath)
	if err := d.Save(dir); err != nil {
		return nil, err
	}

	return RecordDeck(db, d, d.ArchivePath(dir), storageDir)
}
