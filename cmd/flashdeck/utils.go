// ABOUTME: Helpers shared by deck subcommands.
// ABOUTME: Resolves deck references and builds cards from flags.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/models"
	"github.com/spf13/cobra"
)

// resolveDeck maps a user reference to an archive path. The catalog entry is
// nil when ref names an archive on disk the catalog has never seen.
func resolveDeck(ref string) (string, *models.DeckRecord, error) {
	rec, err := catalog.Resolve(dbConn, ref)
	if err == nil {
		return rec.ArchivePath, rec, nil
	}

	if errors.Is(err, catalog.ErrDeckNotFound) {
		if info, statErr := os.Stat(ref); statErr == nil && !info.IsDir() {
			return ref, nil, nil
		}
	}
	return "", nil, fmt.Errorf("failed to find deck %q: %w", ref, err)
}

// resolveRecorded is resolveDeck for commands that only make sense on decks
// the catalog tracks.
func resolveRecorded(ref string) (*models.DeckRecord, error) {
	_, rec, err := resolveDeck(ref)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%s is not in the catalog: %w", ref, catalog.ErrDeckNotFound)
	}
	return rec, nil
}

func addCardFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("field", nil, "card field data (repeatable)")
	cmd.Flags().StringArray("side", nil, "card side data, front first (repeatable)")
	cmd.Flags().Bool("auto-render", false, "render sides as markdown")
}

// cardFromFlags returns the card described by --field/--side, or false when
// neither was given.
func cardFromFlags(cmd *cobra.Command) (models.Flashcard, bool) {
	fields, _ := cmd.Flags().GetStringArray("field")
	sides, _ := cmd.Flags().GetStringArray("side")
	autoRender, _ := cmd.Flags().GetBool("auto-render")

	if len(fields) == 0 && len(sides) == 0 {
		return models.Flashcard{}, false
	}
	return models.NewFlashcard(fields, sides, autoRender), true
}

func shortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
