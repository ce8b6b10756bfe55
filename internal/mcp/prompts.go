// ABOUTME: MCP prompts for common deck-building workflows.
// ABOUTME: Provides pre-configured prompts for AI agent interactions.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "draft-cards",
		Description: "Draft question and answer cards on a topic for an existing deck",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "deck_id",
				Description: "ID of the deck to extend",
				Required:    true,
			},
			{
				Name:        "topic",
				Description: "Topic the cards should cover",
				Required:    true,
			},
		},
	}, s.getDraftCardsPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "review-deck",
		Description: "Review a deck for unclear, duplicated or overloaded cards",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "deck_id",
				Description: "ID of the deck to review",
				Required:    true,
			},
		},
	}, s.getReviewDeckPrompt)
}

func promptResult(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: text,
				},
			},
		},
	}
}

func (s *Server) getDraftCardsPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	deckID := req.Params.Arguments["deck_id"]
	if deckID == "" {
		return nil, fmt.Errorf("deck_id is required")
	}
	topic, ok := req.Params.Arguments["topic"]
	if !ok || topic == "" {
		topic = "the deck's subject"
	}

	return promptResult(fmt.Sprintf(`Draft new flashcards about %s for deck %s.

First call show_deck with id %q to see the existing cards, then:

1. Skip anything the deck already covers.
2. Keep each card to a single fact.
3. Put the question on the first side and the answer on the second.
4. Use fields for short keywords that help find the card later.

Add each card with the add_card tool.`, topic, deckID, deckID)), nil
}

func (s *Server) getReviewDeckPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	deckID := req.Params.Arguments["deck_id"]
	if deckID == "" {
		return nil, fmt.Errorf("deck_id is required")
	}

	return promptResult(fmt.Sprintf(`Review the flashcards in deck %s.

Read the deck with show_deck or the flashdeck://deck/%s resource, then report:

## Unclear Cards
- Questions that could have more than one correct answer

## Duplicates
- Cards asking the same thing in different words

## Overloaded Cards
- Cards that test several facts at once, with a suggested split

Suggest replacements, and add any new cards with the add_card tool.`, deckID, deckID)), nil
}
