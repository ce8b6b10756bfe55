// ABOUTME: Import command for building a deck from exported cards.
// ABOUTME: Reads JSON or YAML written by the export command.

package main

import (
	"fmt"
	"os"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file> <name>",
	Short: "Create a deck from exported cards",
	Long:  `Create a new deck named <name> holding the cards of a JSON or YAML export.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name := args[0], args[1]
		outputFlag, _ := cmd.Flags().GetString("output")
		forceFlag, _ := cmd.Flags().GetBool("force")

		data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		export, err := unmarshalExport(data, formatFromPath(path))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		dir := cfg.OutputDir
		if outputFlag != "" {
			dir = outputFlag
		}

		d := deck.New(name)
		for _, card := range export.Cards {
			d.AddCard(card)
		}

		target := d.ArchivePath(dir)
		if _, err := os.Stat(target); err == nil && !forceFlag {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		}

		if err := d.Save(dir); err != nil {
			return fmt.Errorf("failed to save deck: %w", err)
		}

		rec, err := catalog.RecordDeck(dbConn, d, target, cfg.StorageDir)
		if err != nil {
			return fmt.Errorf("failed to record deck: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Imported %d cards into %s at %s", len(export.Cards), rec.Name, rec.ArchivePath)))
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("output", "o", "", "directory for the archive (default: config output_dir)")
	importCmd.Flags().BoolP("force", "f", false, "overwrite an existing archive")
	rootCmd.AddCommand(importCmd)
}
