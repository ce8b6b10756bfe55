// ABOUTME: Attach command for adding a file to a deck.
// ABOUTME: Existing attachments are reopened so the re-saved archive keeps them.

package main

import (
	"fmt"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

var attachCmd = &cobra.Command{
	Use:   "attach <deck> <file>",
	Short: "Attach a file to a deck",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rcFlag, _ := cmd.Flags().GetUint32("rc")

		archivePath, _, err := resolveDeck(args[0])
		if err != nil {
			return err
		}

		var attached *deck.Attachment
		rec, err := catalog.EditDeck(dbConn, archivePath, cfg.StorageDir, func(d *deck.Deck) error {
			var err error
			attached, err = d.Attachments().Attach(args[1], rcFlag)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to attach file: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Attached %s to %s as %s", args[1], rec.Name, attached.FileName())))
		return nil
	},
}

func init() {
	attachCmd.Flags().Uint32("rc", 1, "reference count recorded for the attachment")
	rootCmd.AddCommand(attachCmd)
}
