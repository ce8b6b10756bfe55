// ABOUTME: Verify command comparing an archive with its recorded digest.
// ABOUTME: Detects archives modified outside flashdeck.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/flashdeck/internal/archive"
	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

var errDigestMismatch = errors.New("archive digest does not match catalog")

var verifyCmd = &cobra.Command{
	Use:   "verify <deck>",
	Short: "Check a deck archive against the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update, _ := cmd.Flags().GetBool("update")

		rec, err := resolveRecorded(args[0])
		if err != nil {
			return err
		}

		digest, err := archive.Digest(rec.ArchivePath)
		if err != nil {
			return fmt.Errorf("failed to digest archive: %w", err)
		}

		fmt.Println(ui.FormatVerify(rec, digest))
		if digest == rec.Digest {
			return nil
		}

		if update {
			if err := catalog.UpdateDigest(dbConn, rec.ID, digest); err != nil {
				return fmt.Errorf("failed to update digest: %w", err)
			}
			fmt.Println(ui.Success("Recorded new digest"))
			return nil
		}
		return errDigestMismatch
	},
}

func init() {
	verifyCmd.Flags().Bool("update", false, "record the current digest when it differs")
	rootCmd.AddCommand(verifyCmd)
}
