// ABOUTME: MCP resources for exposing decks as readable markdown.
// ABOUTME: Allows AI agents to read deck content via URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const deckURIPrefix = "flashdeck://deck/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: deckURIPrefix + "{id}",
			Name:        "Deck",
			Description: "Access individual decks by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	ref, ok := strings.CutPrefix(req.Params.URI, deckURIPrefix)
	if !ok || ref == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	rec, err := catalog.Resolve(s.db, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	d, err := deck.Load(rec.ArchivePath, s.storageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     deckMarkdown(d),
			},
		},
	}, nil
}

func deckMarkdown(d *deck.Deck) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", d.Name()))
	for i, card := range d.Cards() {
		sb.WriteString(fmt.Sprintf("## Card %d\n\n", i+1))
		for j, side := range card.Sides {
			sb.WriteString(fmt.Sprintf("**Side %d:** %s\n\n", j+1, side.Data))
		}
		for _, f := range card.Fields {
			sb.WriteString(fmt.Sprintf("- %s\n", f.Data))
		}
		if len(card.Fields) > 0 {
			sb.WriteString("\n")
		}
	}

	if atts := d.Attachments().All(); len(atts) > 0 {
		sb.WriteString("## Attachments\n\n")
		for _, a := range atts {
			sb.WriteString(fmt.Sprintf("- %s (rc %d)\n", a.FileName(), a.RefCount()))
		}
	}

	return sb.String()
}
