// ABOUTME: New command for creating a deck archive.
// ABOUTME: Optionally seeds one card and any number of attachments.

package main

import (
	"fmt"
	"os"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a deck",
	Long: `Create a deck archive named after the deck, optionally with a first card
and attachments. The archive is written to the output directory, which must exist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		attachFlag, _ := cmd.Flags().GetStringArray("attach")
		rcFlag, _ := cmd.Flags().GetUint32("rc")
		outputFlag, _ := cmd.Flags().GetString("output")
		forceFlag, _ := cmd.Flags().GetBool("force")

		dir := cfg.OutputDir
		if outputFlag != "" {
			dir = outputFlag
		}

		d := deck.New(name)
		if card, ok := cardFromFlags(cmd); ok {
			d.AddCard(card)
		}
		for _, path := range attachFlag {
			if _, err := d.Attachments().Attach(path, rcFlag); err != nil {
				return fmt.Errorf("failed to attach %s: %w", path, err)
			}
		}

		target := d.ArchivePath(dir)
		if _, err := os.Stat(target); err == nil && !forceFlag {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		}

		if err := d.Save(dir); err != nil {
			return fmt.Errorf("failed to save deck: %w", err)
		}
		d.CloseAttachments()

		rec, err := catalog.RecordDeck(dbConn, d, target, cfg.StorageDir)
		if err != nil {
			return fmt.Errorf("failed to record deck: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Created deck %s (%s) at %s", rec.Name, shortID(d.ID()), rec.ArchivePath)))
		return nil
	},
}

func init() {
	addCardFlags(newCmd)
	newCmd.Flags().StringArray("attach", nil, "file to attach (repeatable)")
	newCmd.Flags().Uint32("rc", 1, "reference count recorded for attachments")
	newCmd.Flags().StringP("output", "o", "", "directory for the archive (default: config output_dir)")
	newCmd.Flags().BoolP("force", "f", false, "overwrite an existing archive")
	rootCmd.AddCommand(newCmd)
}
