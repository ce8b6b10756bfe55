// ABOUTME: Show command for displaying a deck.
// ABOUTME: Loads the archive and renders cards and attachments.

package main

import (
	"fmt"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <deck>",
	Short: "Show a deck",
	Long:  `Display a deck's cards and attachments. Attachment files are copied into the storage directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath, _, err := resolveDeck(args[0])
		if err != nil {
			return err
		}

		d, err := deck.Load(archivePath, cfg.StorageDir)
		if err != nil {
			return fmt.Errorf("failed to load deck: %w", err)
		}
		defer d.CloseAttachments()

		if err := catalog.OpenAvailable(d, cfg.StorageDir); err != nil {
			return fmt.Errorf("failed to open attachments: %w", err)
		}

		fmt.Print(ui.FormatDeckHeader(d, archivePath))
		for i, card := range d.Cards() {
			fmt.Print(ui.FormatCard(i, card))
		}

		if atts := d.Attachments().All(); len(atts) > 0 {
			fmt.Print(ui.FormatAttachmentList(atts))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
