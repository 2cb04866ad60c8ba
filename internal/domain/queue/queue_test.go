package queue_test

import (
	"testing"
	"time"

	"github.com/wortkarten/backend/internal/domain/card"
	"github.com/wortkarten/backend/internal/domain/queue"
	"github.com/wortkarten/backend/internal/domain/settings"
	"github.com/wortkarten/backend/internal/domain/srs"
)

var now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// makeCards builds nDue reviewed-and-due cards followed by nNew new cards.
func makeCards(nDue, nNew int) []card.Card {
	var cards []card.Card
	for i := 0; i < nDue; i++ {
		c := card.New("due", "card", "", "", now)
		c.Srs.New = false
		c.Srs.Reps = 1
		c.Srs.Due = now.Add(-time.Hour).UnixMilli()
		cards = append(cards, c)
	}
	for i := 0; i < nNew; i++ {
		cards = append(cards, card.New("new", "card", "", "", now))
	}
	return cards
}

func noShuffle() settings.Settings {
	s := settings.Default()
	s.ShuffleDue = false
	return s
}

func TestBuild_DuePrecedeNew(t *testing.T) {
	cards := makeCards(3, 2)
	q := queue.Build(cards, noShuffle(), 0, now)

	if len(q) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(q))
	}
	for i, c := range q {
		if i < 3 && c.Srs.New {
			t.Errorf("position %d: new card before due cards", i)
		}
		if i >= 3 && !c.Srs.New {
			t.Errorf("position %d: due card after new cards", i)
		}
	}
}

func TestBuild_NoDuplicates(t *testing.T) {
	cards := makeCards(10, 10)
	q := queue.Build(cards, settings.Default(), 0, now)

	seen := make(map[string]bool)
	for _, c := range q {
		if seen[c.ID] {
			t.Fatalf("card %s appears twice", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestBuild_NewCapRespectsSessionUsage(t *testing.T) {
	cards := makeCards(0, 20)
	set := noShuffle()
	set.NewPerSession = 10

	for used, want := range map[int]int{0: 10, 4: 6, 10: 0, 15: 0} {
		q := queue.Build(cards, set, used, now)
		if len(q) != want {
			t.Errorf("used=%d: expected %d new cards, got %d", used, want, len(q))
		}
	}
}

func TestBuild_NewCardsKeepDeckOrder(t *testing.T) {
	cards := makeCards(0, 5)
	q := queue.Build(cards, noShuffle(), 0, now)

	for i := range q {
		if q[i].ID != cards[i].ID {
			t.Fatalf("position %d: expected deck order to be preserved", i)
		}
	}
}

func TestBuild_ExcludesFutureDue(t *testing.T) {
	c := card.New("later", "card", "", "", now)
	c.Srs.New = false
	c.Srs.Due = now.Add(time.Hour).UnixMilli()

	q := queue.Build([]card.Card{c}, noShuffle(), 0, now)
	if len(q) != 0 {
		t.Errorf("expected empty queue, got %d cards", len(q))
	}
}

func TestBuild_NewCardsIgnoreDueTime(t *testing.T) {
	// A new card's due timestamp plays no part in eligibility.
	c := card.New("fresh", "card", "", "", now)
	c.Srs.Due = now.Add(48 * time.Hour).UnixMilli()

	q := queue.Build([]card.Card{c}, noShuffle(), 0, now)
	if len(q) != 1 {
		t.Errorf("expected the new card to be queued, got %d cards", len(q))
	}
}

func TestBuild_ShuffleChangesOrder(t *testing.T) {
	cards := makeCards(30, 0)
	set := settings.Default() // shuffle on

	base := queue.Build(cards, noShuffle(), 0, now)
	for i := 0; i < 10; i++ {
		q := queue.Build(cards, set, 0, now)
		if !sameOrder(base, q) {
			return
		}
	}
	t.Error("expected at least one shuffled queue to differ from deck order")
}

func TestBuild_GradedCardNeverReturnsToNew(t *testing.T) {
	c := card.New("einmal", "once", "", "", now)
	graded := c
	graded.Srs = srs.Grade(c.Srs, srs.QualityAgain, now)

	set := noShuffle()
	set.NewPerSession = 10

	// Graded ten minutes ago: not new anymore, and not yet due.
	q := queue.Build([]card.Card{graded}, set, 0, now)
	if len(q) != 0 {
		t.Errorf("expected queue to exclude freshly lapsed card, got %d", len(q))
	}

	// Once its delay passes it comes back as a due card.
	q = queue.Build([]card.Card{graded}, set, 0, now.Add(11*time.Minute))
	if len(q) != 1 || q[0].Srs.New {
		t.Errorf("expected one due card after the delay, got %+v", q)
	}
}

func sameOrder(a, b []card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
