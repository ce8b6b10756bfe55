// ABOUTME: Config command for inspecting and initializing settings.
// ABOUTME: Prints the effective configuration or writes the defaults to disk.

package main

import (
	"fmt"

	"github.com/harper/flashdeck/internal/config"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		source := config.Path()
		if !config.Exists() {
			source += " (not created, showing defaults)"
		}
		fmt.Printf("# %s\n%s", source, data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if config.Exists() && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.Path())
		}
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Wrote %s", config.Path())))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
