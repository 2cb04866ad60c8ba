package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/wortkarten/backend/internal/domain/card"
	"github.com/wortkarten/backend/internal/domain/settings"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    name TEXT PRIMARY KEY,
    body TEXT NOT NULL
);
`

const (
	docDeck     = "deck"
	docSettings = "settings"
)

// SQLiteStore keeps both documents in a single sqlite file. Each
// document is one row; saves replace the row body wholesale.
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) getDocument(name string) ([]byte, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM documents WHERE name = ?", name).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (s *SQLiteStore) putDocument(name string, body []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO documents (name, body) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET body = excluded.body",
		name, string(body),
	)
	return err
}

// LoadDeck reads the persisted deck document. ErrNotFound means no
// deck has been saved yet; a parse error means the document is
// malformed. The caller decides how to degrade.
func (s *SQLiteStore) LoadDeck() (*card.Deck, error) {
	body, err := s.getDocument(docDeck)
	if err != nil {
		return nil, err
	}
	return card.ParseDeck(body)
}

func (s *SQLiteStore) SaveDeck(d *card.Deck) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	return s.putDocument(docDeck, body)
}

// LoadSettings reads the persisted settings record, merged over the
// defaults. ErrNotFound means nothing has been saved yet.
func (s *SQLiteStore) LoadSettings() (settings.Settings, error) {
	body, err := s.getDocument(docSettings)
	if err != nil {
		return settings.Default(), err
	}
	return settings.Parse(body)
}

func (s *SQLiteStore) SaveSettings(set settings.Settings) error {
	body, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.putDocument(docSettings, body)
}
