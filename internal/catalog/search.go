// ABOUTME: FTS5 full-text search over deck names.
// ABOUTME: Provides ranked lookup for the list command and MCP tools.

package catalog

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/harper/flashdeck/internal/models"
)

type SearchResult struct {
	*models.DeckRecord
	Rank float64
}

func SearchDecks(db *sql.DB, query string, limit int) ([]*SearchResult, error) {
	rows, err := db.Query(
		`SELECT d.id, d.name, d.archive_path, d.storage_dir, d.cards, d.attachments,
		        d.digest, d.created_at, d.updated_at, rank
		 FROM decks_fts
		 JOIN decks d ON decks_fts.rowid = d.rowid
		 WHERE decks_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*SearchResult
	for rows.Next() {
		result := &SearchResult{DeckRecord: &models.DeckRecord{}}
		var idStr string
		if err := rows.Scan(&idStr, &result.Name, &result.ArchivePath, &result.StorageDir,
			&result.Cards, &result.Attachments, &result.Digest,
			&result.CreatedAt, &result.UpdatedAt, &result.Rank); err != nil {
			return nil, err
		}
		result.ID, _ = uuid.Parse(idStr)
		results = append(results, result)
	}
	return results, rows.Err()
}
