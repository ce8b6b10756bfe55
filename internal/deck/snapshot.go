// ABOUTME: Fixed-shape CBOR snapshot of a deck's metadata.
// ABOUTME: Attachment bytes are never part of it; they travel as files.

package deck

import (
	"os"

	"github.com/harper/flashdeck/internal/codec"
	"github.com/harper/flashdeck/internal/models"
)

type snapshot struct {
	_           struct{} `cbor:",toarray"`
	ID          string
	Name        string
	Cards       []models.Flashcard
	Attachments []attachmentMeta
}

type attachmentMeta struct {
	_   struct{} `cbor:",toarray"`
	ID  string
	Ext string
	RC  uint32
}

func (d *Deck) snapshot() snapshot {
	s := snapshot{
		ID:          d.id,
		Name:        d.name,
		Cards:       d.cards,
		Attachments: make([]attachmentMeta, 0, d.attachments.Len()),
	}
	for _, a := range d.attachments.entries {
		s.Attachments = append(s.Attachments, attachmentMeta{ID: a.id, Ext: a.ext, RC: a.rc})
	}
	return s
}

func fromSnapshot(s snapshot) *Deck {
	d := &Deck{
		id:          s.ID,
		name:        s.Name,
		cards:       s.Cards,
		attachments: newStore(),
	}
	for _, m := range s.Attachments {
		d.attachments.entries = append(d.attachments.entries, &Attachment{id: m.ID, ext: m.Ext, rc: m.RC})
	}
	return d
}

func writeSnapshot(path string, d *Deck) error {
	data, err := codec.Marshal(d.snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644) //nolint:gosec // Scratch file
}

func readSnapshot(path string) (*Deck, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Scratch file
	if err != nil {
		return nil, err
	}
	var s snapshot
	if err := codec.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return fromSnapshot(s), nil
}
