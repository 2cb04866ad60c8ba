package card

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/wortkarten/backend/internal/domain/srs"
	"github.com/wortkarten/backend/internal/id"
)

// Card is a front/back text pair with optional metadata and its
// spaced-repetition scheduling state. JSON field names are stable so
// old backup files import cleanly.
type Card struct {
	ID      string    `json:"id"`
	Front   string    `json:"front"`
	Back    string    `json:"back"`
	POS     string    `json:"pos,omitempty"`
	Notes   string    `json:"notes,omitempty"`
	Created int64     `json:"created"` // Unix milliseconds
	Srs     srs.State `json:"srs"`
}

// New creates a card with a fresh id and default scheduling state.
// Text fields are trimmed; empty front/back are permitted, validation
// is the caller's concern.
func New(front, back, pos, notes string, now time.Time) Card {
	return Card{
		ID:      id.New(),
		Front:   strings.TrimSpace(front),
		Back:    strings.TrimSpace(back),
		POS:     strings.TrimSpace(pos),
		Notes:   strings.TrimSpace(notes),
		Created: now.UnixMilli(),
		Srs:     srs.NewState(now),
	}
}

// UnmarshalJSON fills missing scheduling fields with defaults before
// decoding, mirroring the field-wise merge the deck loader has always
// done. A card whose srs block lacks "new" is treated as new.
func (c *Card) UnmarshalJSON(data []byte) error {
	type alias Card
	tmp := alias{Srs: srs.State{Ease: 2.5, New: true}}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Card(tmp)
	return nil
}

// Deck is the ordered card list; deck order is insertion order and is
// the unit of persistence and of import/export.
type Deck struct {
	Cards []Card `json:"cards"`
}

// ErrNoCards is returned when an imported document has no card list.
var ErrNoCards = errors.New("document has no cards field")

// ParseDeck decodes a persisted deck document.
func ParseDeck(body []byte) (*Deck, error) {
	var probe struct {
		Cards json.RawMessage `json:"cards"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, err
	}
	if probe.Cards == nil {
		return nil, ErrNoCards
	}
	var d Deck
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Remove deletes the card with the given id. It is a no-op when the
// id is absent; the return reports whether anything was removed.
func (d *Deck) Remove(cardID string) bool {
	for i, c := range d.Cards {
		if c.ID == cardID {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the card with the given id, or nil.
func (d *Deck) Find(cardID string) *Card {
	for i := range d.Cards {
		if d.Cards[i].ID == cardID {
			return &d.Cards[i]
		}
	}
	return nil
}

// BulkEntry is one front/back pair parsed out of bulk-add text.
type BulkEntry struct {
	Front string
	Back  string
}

// ParseBulk splits text into lines and each line on its first '='.
// The left side becomes the front, everything after the first '=' the
// back. Lines without a '=' are counted as skipped.
func ParseBulk(text string) (entries []BulkEntry, skipped int) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		front, back, found := strings.Cut(line, "=")
		if !found {
			skipped++
			continue
		}
		entries = append(entries, BulkEntry{
			Front: strings.TrimSpace(front),
			Back:  strings.TrimSpace(back),
		})
	}
	return entries, skipped
}
