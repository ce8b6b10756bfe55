// ABOUTME: List command for displaying known decks.
// ABOUTME: Supports full-text search over deck names.

package main

import (
	"fmt"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
)

const defaultListLimit = 20

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List decks",
	Long:  `List decks recorded in the catalog, most recently updated first, optionally filtered by a search query.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		searchFlag, _ := cmd.Flags().GetString("search")
		limitFlag, _ := cmd.Flags().GetInt("limit")

		if searchFlag != "" {
			return listSearch(searchFlag, limitFlag)
		}

		decks, err := catalog.ListDecks(dbConn, limitFlag)
		if err != nil {
			return fmt.Errorf("failed to list decks: %w", err)
		}

		if len(decks) == 0 {
			fmt.Println("No decks found.")
			return nil
		}

		for _, rec := range decks {
			fmt.Print(ui.FormatDeckListItem(rec))
		}
		return nil
	},
}

func listSearch(query string, limit int) error {
	results, err := catalog.SearchDecks(dbConn, query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No decks found.")
		return nil
	}

	for _, r := range results {
		fmt.Print(ui.FormatDeckListItem(r.DeckRecord))
	}
	return nil
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "full-text search on deck names")
	listCmd.Flags().IntP("limit", "n", defaultListLimit, "max decks to show")
	rootCmd.AddCommand(listCmd)
}
