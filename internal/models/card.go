// ABOUTME: Flashcard content model: fields of data and the sides that show them.
// ABOUTME: Plain values persisted in deck snapshots and card exports.

package models

// Flashcard is a small unit of information to be memorized. In deck
// snapshots cards and their parts encode as fixed-position CBOR arrays.
type Flashcard struct {
	_             struct{} `cbor:",toarray" json:"-" yaml:"-"`
	Fields        []Field  `json:"fields" yaml:"fields"`
	Sides         []Side   `json:"sides" yaml:"sides"`
	AutoRendering bool     `json:"auto_rendering" yaml:"auto_rendering"`
}

// Field holds data shown on one or more sides of a card.
type Field struct {
	_    struct{} `cbor:",toarray" json:"-" yaml:"-"`
	Data string   `json:"data" yaml:"data"`
}

// Side is one visual face of a card.
type Side struct {
	_    struct{} `cbor:",toarray" json:"-" yaml:"-"`
	Data string   `json:"data" yaml:"data"`
}

func NewFlashcard(fields, sides []string, autoRendering bool) Flashcard {
	card := Flashcard{
		Fields:        make([]Field, 0, len(fields)),
		Sides:         make([]Side, 0, len(sides)),
		AutoRendering: autoRendering,
	}
	for _, f := range fields {
		card.Fields = append(card.Fields, Field{Data: f})
	}
	for _, s := range sides {
		card.Sides = append(card.Sides, Side{Data: s})
	}
	return card
}

// Front returns the first side's data, or the first field when the card has
// no sides.
func (c Flashcard) Front() string {
	if len(c.Sides) > 0 {
		return c.Sides[0].Data
	}
	if len(c.Fields) > 0 {
		return c.Fields[0].Data
	}
	return ""
}
