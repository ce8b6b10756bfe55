// ABOUTME: Terminal UI formatting for flashdeck output.
// ABOUTME: Uses glamour for markdown sides and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func shortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}

func FormatDeckListItem(rec *models.DeckRecord) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(shortID(rec.ID.String())), bold(rec.Name)))
	sb.WriteString(fmt.Sprintf("           %s %d  %s %d\n",
		faint("Cards:"), rec.Cards,
		faint("Attachments:"), rec.Attachments))
	sb.WriteString(fmt.Sprintf("           %s %s\n", faint("Archive:"), cyan(rec.ArchivePath)))
	sb.WriteString(fmt.Sprintf("           %s %s\n",
		faint("Updated:"),
		faint(rec.UpdatedAt.Format("2006-01-02 15:04"))))

	return sb.String()
}

func FormatDeckHeader(d *deck.Deck, archivePath string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(d.Name())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(d.ID())))
	if archivePath != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Archive:"), faint(archivePath)))
	}
	sb.WriteString(fmt.Sprintf("%s %d  %s %d\n",
		faint("Cards:"), len(d.Cards()),
		faint("Attachments:"), d.Attachments().Len()))

	sb.WriteString(Separator())
	return sb.String()
}

// FormatMarkdown renders content for the terminal, falling back to the raw
// text when glamour cannot.
func FormatMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

// FormatCard renders one card. Sides of auto-rendering cards go through
// glamour; fields are always shown raw.
func FormatCard(index int, card models.Flashcard) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(fmt.Sprintf("Card %d", index+1))))
	for i, side := range card.Sides {
		sb.WriteString(fmt.Sprintf("  %s\n", faint(fmt.Sprintf("Side %d:", i+1))))
		text := side.Data
		if card.AutoRendering {
			text, _ = FormatMarkdown(side.Data)
			text = strings.TrimRight(text, "\n")
		}
		for _, line := range strings.Split(text, "\n") {
			sb.WriteString("    " + line + "\n")
		}
	}
	if len(card.Fields) > 0 {
		var data []string
		for _, f := range card.Fields {
			data = append(data, f.Data)
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("Fields:"), cyan(strings.Join(data, ", "))))
	}

	return sb.String()
}

func FormatAttachmentList(attachments []*deck.Attachment) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s\n", bold("Attachments:")))
	for _, a := range attachments {
		state := "closed"
		if a.IsOpen() {
			state = humanize.Bytes(uint64(a.Size())) //nolint:gosec // Size is never negative
		}
		sb.WriteString(fmt.Sprintf("  %s  %s %s %s\n",
			faint(shortID(a.ID())),
			a.FileName(),
			faint(fmt.Sprintf("[rc %d]", a.RefCount())),
			faint(fmt.Sprintf("(%s)", state))))
	}

	return sb.String()
}

// FormatVerify reports whether an archive still matches its recorded digest.
func FormatVerify(rec *models.DeckRecord, digest string) string {
	if rec.Digest == digest {
		return Success(fmt.Sprintf("%s matches recorded digest %s", rec.ArchivePath, faint(shortID(digest))))
	}
	return Error(fmt.Sprintf("%s changed since it was recorded (%s, now %s)",
		rec.ArchivePath, shortID(rec.Digest), shortID(digest)))
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
