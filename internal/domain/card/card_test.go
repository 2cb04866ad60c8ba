package card_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/wortkarten/backend/internal/domain/card"
)

var now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestNew_TrimsFields(t *testing.T) {
	c := card.New("  Hund ", " dog\n", " noun ", "  ", now)

	if c.Front != "Hund" {
		t.Errorf("expected front %q, got %q", "Hund", c.Front)
	}
	if c.Back != "dog" {
		t.Errorf("expected back %q, got %q", "dog", c.Back)
	}
	if c.POS != "noun" {
		t.Errorf("expected pos %q, got %q", "noun", c.POS)
	}
	if c.Notes != "" {
		t.Errorf("expected empty notes, got %q", c.Notes)
	}
}

func TestNew_InitialSchedulingState(t *testing.T) {
	c := card.New("Hund", "dog", "", "", now)

	if c.ID == "" {
		t.Error("expected a generated id")
	}
	if !c.Srs.New {
		t.Error("expected card to start new")
	}
	if c.Srs.Ease != 2.5 {
		t.Errorf("expected ease 2.5, got %v", c.Srs.Ease)
	}
	if c.Srs.Due != now.UnixMilli() {
		t.Errorf("expected due now, got %d", c.Srs.Due)
	}
}

func TestParseDeck_MissingCards(t *testing.T) {
	if _, err := card.ParseDeck([]byte(`{"settings":{}}`)); err != card.ErrNoCards {
		t.Errorf("expected ErrNoCards, got %v", err)
	}
}

func TestParseDeck_Malformed(t *testing.T) {
	if _, err := card.ParseDeck([]byte(`{"cards": [`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseDeck_FillsMissingSrsDefaults(t *testing.T) {
	raw := []byte(`{"cards":[{"id":"abc","front":"Hund","back":"dog"}]}`)

	deck, err := card.ParseDeck(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deck.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(deck.Cards))
	}

	s := deck.Cards[0].Srs
	if s.Ease != 2.5 {
		t.Errorf("expected default ease 2.5, got %v", s.Ease)
	}
	if !s.New {
		t.Error("card without srs block should be treated as new")
	}
}

func TestDeck_RoundTrip(t *testing.T) {
	deck := &card.Deck{Cards: []card.Card{
		card.New("Hund", "dog", "noun", "", now),
		card.New("laufen", "to run", "verb", "irregular", now),
	}}
	deck.Cards[1].Srs.New = false
	deck.Cards[1].Srs.Reps = 3
	deck.Cards[1].Srs.Ease = 2.4

	body, err := json.Marshal(deck)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := card.ParseDeck(body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(got.Cards))
	}
	for i := range deck.Cards {
		if got.Cards[i] != deck.Cards[i] {
			t.Errorf("card %d changed across round trip:\n got %+v\nwant %+v", i, got.Cards[i], deck.Cards[i])
		}
	}
}

func TestDeck_RemoveAndFind(t *testing.T) {
	deck := &card.Deck{Cards: []card.Card{
		card.New("a", "1", "", "", now),
		card.New("b", "2", "", "", now),
	}}
	target := deck.Cards[0].ID

	if deck.Find(target) == nil {
		t.Fatal("expected to find card before removal")
	}
	if !deck.Remove(target) {
		t.Error("expected Remove to report true")
	}
	if deck.Find(target) != nil {
		t.Error("card still present after removal")
	}
	if deck.Remove("missing") {
		t.Error("removing an absent id should be a no-op")
	}
	if len(deck.Cards) != 1 {
		t.Errorf("expected 1 card left, got %d", len(deck.Cards))
	}
}

func TestParseBulk(t *testing.T) {
	entries, skipped := card.ParseBulk("Hund = dog\nKatze = cat\nmalformed line")

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped line, got %d", skipped)
	}
	if entries[0].Front != "Hund" || entries[0].Back != "dog" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestParseBulk_KeepsExtraEquals(t *testing.T) {
	entries, _ := card.ParseBulk("E = mc^2 = energy")

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Back != "mc^2 = energy" {
		t.Errorf("expected back to keep later '=', got %q", entries[0].Back)
	}
}

func TestParseBulk_BlankLinesIgnored(t *testing.T) {
	entries, skipped := card.ParseBulk("\n\na = b\n   \n")

	if len(entries) != 1 || skipped != 0 {
		t.Errorf("expected 1 entry and 0 skipped, got %d and %d", len(entries), skipped)
	}
}
