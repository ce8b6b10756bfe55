// ABOUTME: Deck aggregate: identity, name, ordered cards and owned attachments.
// ABOUTME: Entry point for saving to and loading from deck archives.

package deck

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/harper/flashdeck/internal/models"
)

const (
	// FileExt is the suffix of every deck archive.
	FileExt = ".deck"

	// StorageDirName is the directory holding attachment files, both inside
	// an archive and under the storage directory passed to Load.
	StorageDirName = "storage"

	// SnapshotName is the archive member holding the encoded deck metadata.
	SnapshotName = "deck"
)

// Deck is a named collection of flashcards and the files they reference.
type Deck struct {
	id          string
	name        string
	cards       []models.Flashcard
	attachments *Store
}

// New returns an empty deck with a fresh identifier.
func New(name string) *Deck {
	return &Deck{
		id:          uuid.New().String(),
		name:        name,
		attachments: newStore(),
	}
}

func (d *Deck) ID() string   { return d.id }
func (d *Deck) Name() string { return d.name }

// Cards returns a copy of the card list in deck order.
func (d *Deck) Cards() []models.Flashcard {
	out := make([]models.Flashcard, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) AddCard(card models.Flashcard) {
	d.cards = append(d.cards, card)
}

func (d *Deck) Attachments() *Store {
	return d.attachments
}

// FileName is the archive file name Save writes: the deck name with spaces
// replaced by underscores, plus FileExt.
func (d *Deck) FileName() string {
	return strings.ReplaceAll(d.name, " ", "_") + FileExt
}

// ArchivePath is where Save(dir) puts the archive.
func (d *Deck) ArchivePath(dir string) string {
	return filepath.Join(dir, d.FileName())
}

// OpenAttachments loads every attachment from the layout Load produces under
// storageDir.
func (d *Deck) OpenAttachments(storageDir string) error {
	return d.attachments.OpenAll(filepath.Join(storageDir, StorageDirName))
}

// CloseAttachments releases attachment bytes held in memory. Call it after a
// successful Save once the archive holds the data.
func (d *Deck) CloseAttachments() {
	d.attachments.CloseAll()
}
