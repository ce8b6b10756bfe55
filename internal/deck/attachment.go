// ABOUTME: Attachment is one binary file referenced by cards in a deck.
// ABOUTME: Its bytes are loaded on demand and released with Close.

package deck

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Attachment is a single stored file. While open it holds the file's bytes in
// memory; while closed only its metadata is kept and the bytes live in a
// storage directory as <id>.<ext>.
//
// The reference count is recorded once at creation. Nothing here recomputes it
// when cards change; callers editing cards own keeping it accurate.
type Attachment struct {
	id   string
	ext  string
	rc   uint32
	data []byte
	open bool
}

// NewAttachment reads the file at sourcePath and returns an open attachment
// with a fresh identifier. The extension is taken from sourcePath.
func NewAttachment(sourcePath string, rc uint32) (*Attachment, error) {
	data, err := os.ReadFile(sourcePath) //nolint:gosec // Caller-supplied source file
	if err != nil {
		return nil, wrap(CreatingAttachment, err)
	}
	return &Attachment{
		id:   uuid.New().String(),
		ext:  extension(sourcePath),
		rc:   rc,
		data: data,
		open: true,
	}, nil
}

// extension returns the text after the last dot of the base name. Names with
// no dot, or whose only dot is the leading one (".bashrc"), have none, and so
// do extensions that are not valid UTF-8.
func extension(p string) string {
	base := filepath.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	ext := base[i+1:]
	if !utf8.ValidString(ext) {
		return ""
	}
	return ext
}

func (a *Attachment) ID() string       { return a.id }
func (a *Attachment) Ext() string      { return a.ext }
func (a *Attachment) RefCount() uint32 { return a.rc }
func (a *Attachment) IsOpen() bool     { return a.open }

// Data returns the in-memory bytes, or nil when closed.
func (a *Attachment) Data() []byte {
	if !a.open {
		return nil
	}
	return a.data
}

// Size is the number of bytes held in memory.
func (a *Attachment) Size() int {
	return len(a.data)
}

// FileName is the attachment's name inside a storage directory.
func (a *Attachment) FileName() string {
	if a.ext == "" {
		return a.id
	}
	return a.id + "." + a.ext
}

// Open loads the attachment's bytes from storageDir, replacing anything
// already in memory.
func (a *Attachment) Open(storageDir string) error {
	data, err := os.ReadFile(filepath.Join(storageDir, a.FileName()))
	if err != nil {
		return wrap(OpeningAttachment, err)
	}
	a.data = data
	a.open = true
	return nil
}

// Close releases the in-memory bytes. Files on disk are untouched.
func (a *Attachment) Close() {
	a.data = nil
	a.open = false
}

// Save writes the bytes to storageDir, creating or truncating the file.
// A closed attachment is skipped without error: if it was never written to
// storageDir before closing, this call cannot recover it.
func (a *Attachment) Save(storageDir string) error {
	if !a.open {
		logger.Debug("skipping closed attachment", "id", a.id)
		return nil
	}
	if err := os.WriteFile(filepath.Join(storageDir, a.FileName()), a.data, 0644); err != nil { //nolint:gosec // Attachment payloads are not secret
		return wrap(SavingAttachment, err)
	}
	return nil
}
