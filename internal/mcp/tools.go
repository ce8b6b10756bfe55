// ABOUTME: MCP tools for browsing decks and adding cards.
// ABOUTME: Maps CLI functionality to MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/flashdeck/internal/catalog"
	"github.com/harper/flashdeck/internal/deck"
	"github.com/harper/flashdeck/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_decks
	s.server.AddTool(&mcp.Tool{
		Name:        "list_decks",
		Description: "List known decks, most recently updated first",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "integer", "description": "Max results", "default": 20}
			}
		}`),
	}, s.handleListDecks)

	// search_decks
	s.server.AddTool(&mcp.Tool{
		Name:        "search_decks",
		Description: "Full-text search deck names",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search query"},
				"limit": {"type": "integer", "description": "Max results", "default": 10}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchDecks)

	// show_deck
	s.server.AddTool(&mcp.Tool{
		Name:        "show_deck",
		Description: "Show a deck's cards and attachments",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Deck ID or prefix (6+ chars)"}
			},
			"required": ["id"]
		}`),
	}, s.handleShowDeck)

	// add_card
	s.server.AddTool(&mcp.Tool{
		Name:        "add_card",
		Description: "Append a card to a deck and re-save its archive",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Deck ID or prefix"},
				"fields": {"type": "array", "items": {"type": "string"}, "description": "Field data"},
				"sides": {"type": "array", "items": {"type": "string"}, "description": "Side data, front first"},
				"auto_rendering": {"type": "boolean", "description": "Render sides as markdown", "default": false}
			},
			"required": ["id", "sides"]
		}`),
	}, s.handleAddCard)
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}
}

type attachmentView struct {
	ID       string `json:"id"`
	Ext      string `json:"ext"`
	RefCount uint32 `json:"rc"`
	FileName string `json:"file_name"`
}

type deckView struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	ArchivePath string             `json:"archive_path"`
	Cards       []models.Flashcard `json:"cards"`
	Attachments []attachmentView   `json:"attachments"`
}

func newDeckView(d *deck.Deck, archivePath string) deckView {
	view := deckView{
		ID:          d.ID(),
		Name:        d.Name(),
		ArchivePath: archivePath,
		Cards:       d.Cards(),
		Attachments: []attachmentView{},
	}
	for _, a := range d.Attachments().All() {
		view.Attachments = append(view.Attachments, attachmentView{
			ID:       a.ID(),
			Ext:      a.Ext(),
			RefCount: a.RefCount(),
			FileName: a.FileName(),
		})
	}
	return view
}

// Tool handlers.
func (s *Server) handleListDecks(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Limit int `json:"limit"`
	}
	params.Limit = 20 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	decks, err := catalog.ListDecks(s.db, params.Limit)
	if err != nil {
		return errorResult("failed to list decks: %v", err), nil
	}
	if decks == nil {
		decks = []*models.DeckRecord{}
	}
	return jsonResult(decks), nil
}

func (s *Server) handleSearchDecks(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	params.Limit = 10 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	results, err := catalog.SearchDecks(s.db, params.Query, params.Limit)
	if err != nil {
		return errorResult("search failed: %v", err), nil
	}

	decks := make([]*models.DeckRecord, 0, len(results))
	for _, r := range results {
		decks = append(decks, r.DeckRecord)
	}
	return jsonResult(decks), nil
}

func (s *Server) handleShowDeck(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	rec, err := catalog.Resolve(s.db, params.ID)
	if err != nil {
		return errorResult("failed to find deck: %v", err), nil
	}

	d, err := deck.Load(rec.ArchivePath, s.storageDir)
	if err != nil {
		return errorResult("failed to load deck: %v", err), nil
	}

	return jsonResult(newDeckView(d, rec.ArchivePath)), nil
}

func (s *Server) handleAddCard(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID            string   `json:"id"`
		Fields        []string `json:"fields"`
		Sides         []string `json:"sides"`
		AutoRendering bool     `json:"auto_rendering"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if len(params.Sides) == 0 && len(params.Fields) == 0 {
		return errorResult("card needs at least one side or field"), nil
	}

	rec, err := catalog.Resolve(s.db, params.ID)
	if err != nil {
		return errorResult("failed to find deck: %v", err), nil
	}

	card := models.NewFlashcard(params.Fields, params.Sides, params.AutoRendering)
	updated, err := catalog.EditDeck(s.db, rec.ArchivePath, s.storageDir, func(d *deck.Deck) error {
		d.AddCard(card)
		return nil
	})
	if err != nil {
		return errorResult("failed to add card: %v", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Added card %d to %s", updated.Cards, updated.Name)},
		},
	}, nil
}
