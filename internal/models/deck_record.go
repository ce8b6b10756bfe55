// ABOUTME: DeckRecord model describing a deck archive known to the catalog.
// ABOUTME: Tracks where the archive lives and a digest of its bytes.

package models

import (
	"time"

	"github.com/google/uuid"
)

type DeckRecord struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ArchivePath string    `json:"archive_path"`
	StorageDir  string    `json:"storage_dir"`
	Cards       int       `json:"cards"`
	Attachments int       `json:"attachments"`
	Digest      string    `json:"digest"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewDeckRecord(id uuid.UUID, name, archivePath string) *DeckRecord {
	now := time.Now()
	return &DeckRecord{
		ID:          id,
		Name:        name,
		ArchivePath: archivePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *DeckRecord) Touch() {
	r.UpdatedAt = time.Now()
}
