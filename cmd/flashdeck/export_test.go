package main

import (
	"strings"
	"testing"

	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/models"
)

func TestExportRoundTrip(t *testing.T) {
	d := deck.New("Spanish Verbs")
	d.AddCard(models.NewFlashcard([]string{"verb"}, []string{"hablar", "to speak"}, false))
	d.AddCard(models.NewFlashcard(nil, []string{"**comer**", "to eat"}, true))

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			data, err := marshalExport(newExportDeck(d), format)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			got, err := unmarshalExport(data, format)
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Name != "Spanish Verbs" || got.ID != d.ID() {
				t.Fatalf("unexpected header %q %q", got.Name, got.ID)
			}
			if got.Version != exportVersion {
				t.Fatalf("expected version %s, got %s", exportVersion, got.Version)
			}
			if len(got.Cards) != 2 {
				t.Fatalf("expected 2 cards, got %d", len(got.Cards))
			}
			if got.Cards[0].Sides[1].Data != "to speak" || got.Cards[0].Fields[0].Data != "verb" {
				t.Fatalf("unexpected first card %+v", got.Cards[0])
			}
			if !got.Cards[1].AutoRendering {
				t.Fatal("expected auto rendering to survive")
			}
		})
	}
}

func TestExportEmptyDeckHasCardList(t *testing.T) {
	data, err := marshalExport(newExportDeck(deck.New("Empty")), "json")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"cards": []`) {
		t.Fatalf("expected empty card list, got %s", data)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := marshalExport(ExportDeck{}, "md"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := unmarshalExport([]byte("{}"), "md"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"cards.json": "json",
		"cards.yaml": "yaml",
		"cards.YML":  "yaml",
		"cards":      "json",
	}
	for path, want := range tests {
		if got := formatFromPath(path); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
