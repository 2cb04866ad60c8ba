package store

import (
	"errors"

	"github.com/wortkarten/backend/internal/domain/card"
	"github.com/wortkarten/backend/internal/domain/settings"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists the two application documents, the deck and the
// settings record, as whole-document snapshots. There is exactly one
// reader and one writer (this process), so every save is a wholesale
// overwrite.
type Store interface {
	LoadDeck() (*card.Deck, error)
	SaveDeck(d *card.Deck) error
	LoadSettings() (settings.Settings, error)
	SaveSettings(s settings.Settings) error
	Close() error
}
