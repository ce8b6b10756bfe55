// ABOUTME: Builds deck archives from a deck and reads them back.
// ABOUTME: All intermediate files live in a scratch directory removed on exit.

package deck

import (
	"os"
	"path/filepath"

	"github.com/harper/flashdeck/internal/archive"
)

const (
	workingDirName = "deck_files"
	tarballName    = "deck.tar.gz"
	scratchPattern = "flashdeck-*"
)

// Save writes the deck and the bytes of every open attachment to
// dir/FileName() as a gzip compressed tar archive. Closed attachments keep
// their metadata in the archive but contribute no file. dir must exist.
func (d *Deck) Save(dir string) error {
	root, err := os.MkdirTemp("", scratchPattern)
	if err != nil {
		return wrap(SavingDeck, err)
	}
	defer removeScratch(root)

	working := filepath.Join(root, workingDirName)
	storage := filepath.Join(working, StorageDirName)
	if err := os.MkdirAll(storage, 0755); err != nil {
		return wrap(SavingDeck, err)
	}

	if err := d.attachments.SaveAll(storage); err != nil {
		return err
	}

	if err := writeSnapshot(filepath.Join(working, SnapshotName), d); err != nil {
		return wrap(SavingDeck, err)
	}

	tarball := filepath.Join(root, tarballName)
	if err := archive.Pack(working, tarball); err != nil {
		return wrap(SavingDeck, err)
	}

	target := d.ArchivePath(dir)
	if err := archive.CopyFile(tarball, target); err != nil {
		return wrap(SavingDeck, err)
	}

	logger.Debug("saved deck", "id", d.id, "path", target,
		"cards", len(d.cards), "attachments", d.attachments.Len())
	return nil
}

// Load reads the archive at archivePath. Attachment files are copied into
// storageDir/StorageDirName, creating it as needed; every attachment of the
// returned deck starts closed.
func Load(archivePath, storageDir string) (*Deck, error) {
	root, err := os.MkdirTemp("", scratchPattern)
	if err != nil {
		return nil, wrap(GettingDeckFromFile, err)
	}
	defer removeScratch(root)

	if err := archive.Unpack(archivePath, root); err != nil {
		return nil, wrap(GettingDeckFromFile, err)
	}

	if err := archive.CopyDir(filepath.Join(root, StorageDirName), filepath.Join(storageDir, StorageDirName)); err != nil {
		return nil, wrap(GettingDeckFromFile, err)
	}

	d, err := readSnapshot(filepath.Join(root, SnapshotName))
	if err != nil {
		return nil, wrap(GettingDeckFromFile, err)
	}

	logger.Debug("loaded deck", "id", d.id, "archive", archivePath,
		"cards", len(d.cards), "attachments", d.attachments.Len())
	return d, nil
}

func removeScratch(root string) {
	if err := os.RemoveAll(root); err != nil {
		logger.Warn("failed to remove scratch directory", "path", root, "err", err)
	}
}
