// ABOUTME: Card command for appending a card to a deck.
// ABOUTME: Re-saves the archive in place and updates the catalog.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card <deck>",
	Short: "Add a card to a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, ok := cardFromFlags(cmd)
		if !ok {
			return errors.New("card needs at least one --side or --field")
		}

		archivePath, _, err := resolveDeck(args[0])
		if err != nil {
			return err
		}

		rec, err := catalog.EditDeck(dbConn, archivePath, cfg.StorageDir, func(d *deck.Deck) error {
			d.AddCard(card)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to add card: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Added card %d to %s", rec.Cards, rec.Name)))
		return nil
	},
}

func init() {
	addCardFlags(cardCmd)
	rootCmd.AddCommand(cardCmd)
}
