// ABOUTME: Root command wiring shared state for every subcommand.
// ABOUTME: Loads config, configures logging, and opens the deck catalog.

package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	dbConn *sql.DB
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Pack study decks and their attachments into portable archives",
	Long: `flashdeck keeps decks of flashcards together with the files they reference
in a single .deck archive, and unpacks them again on any machine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		flagLevel, _ := cmd.Flags().GetString("log-level")
		warning, err := configureLoggerForCLI(flagLevel, cfg.LogLevel)
		if err != nil {
			return err
		}
		if warning != "" {
			fmt.Fprintln(os.Stderr, warning)
		}

		if storage, _ := cmd.Flags().GetString("storage"); storage != "" {
			cfg.StorageDir = storage
		}
		if catalogPath, _ := cmd.Flags().GetString("catalog"); catalogPath != "" {
			cfg.CatalogPath = catalogPath
		}

		dbConn, err = catalog.Open(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to open catalog: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbConn != nil {
			return dbConn.Close()
		}
		return nil
	},
}

func Execute() error {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("storage", "", "directory receiving attachment files (overrides config)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog database path (overrides config)")
}
