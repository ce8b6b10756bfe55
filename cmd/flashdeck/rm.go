// ABOUTME: Remove command for forgetting decks.
// ABOUTME: Includes confirmation prompt and optional archive deletion.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <deck>",
	Short: "Remove a deck from the catalog",
	Long:  `Forget a deck. With --purge the archive file is deleted as well.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		purge, _ := cmd.Flags().GetBool("purge")

		rec, err := resolveRecorded(args[0])
		if err != nil {
			return err
		}

		if !force {
			fmt.Printf("Remove deck %q (%s)? [y/N] ", rec.Name, shortID(rec.ID.String()))
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := catalog.DeleteDeck(dbConn, rec.ID); err != nil {
			return fmt.Errorf("failed to remove deck: %w", err)
		}

		if purge {
			if err := os.Remove(rec.ArchivePath); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to delete archive: %w", err)
			}
		}

		fmt.Println(ui.Success(fmt.Sprintf("Removed deck %s", shortID(rec.ID.String()))))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rmCmd.Flags().Bool("purge", false, "also delete the archive file")
	rootCmd.AddCommand(rmCmd)
}
