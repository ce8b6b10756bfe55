// ABOUTME: Export command for writing a deck's cards as text.
// ABOUTME: Supports JSON and YAML formats readable by the import command.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/models"
	"github.com/harper/flashdeck/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const exportVersion = "1.0"

type ExportDeck struct {
	ID         string             `json:"id" yaml:"id"`
	Name       string             `json:"name" yaml:"name"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Version    string             `json:"version" yaml:"version"`
	Cards      []models.Flashcard `json:"cards" yaml:"cards"`
}

var exportCmd = &cobra.Command{
	Use:   "export <deck>",
	Short: "Export a deck's cards",
	Long:  `Export a deck's cards to JSON or YAML. Attachments stay in the archive.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		archivePath, _, err := resolveDeck(args[0])
		if err != nil {
			return err
		}

		d, err := deck.Load(archivePath, cfg.StorageDir)
		if err != nil {
			return fmt.Errorf("failed to load deck: %w", err)
		}

		data, err := marshalExport(newExportDeck(d), format)
		if err != nil {
			return err
		}

		if outputPath == "" || outputPath == "-" {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Exported %d cards to %s", len(d.Cards()), outputPath)))
		return nil
	},
}

func newExportDeck(d *deck.Deck) ExportDeck {
	cards := d.Cards()
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return ExportDeck{
		ID:         d.ID(),
		Name:       d.Name(),
		ExportedAt: time.Now().UTC(),
		Version:    exportVersion,
		Cards:      cards,
	}
}

func marshalExport(export ExportDeck, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(export)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func unmarshalExport(data []byte, format string) (*ExportDeck, error) {
	var export ExportDeck
	switch format {
	case "json":
		if err := json.Unmarshal(data, &export); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &export); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	return &export, nil
}

// formatFromPath picks the export format from a file extension, defaulting
// to JSON.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|yaml)")
	exportCmd.Flags().StringP("output", "o", "", "output path (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
