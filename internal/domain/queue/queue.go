package queue

import (
	"math/rand"
	"time"

	"github.com/wortkarten/backend/internal/domain/card"
	"github.com/wortkarten/backend/internal/domain/settings"
)

// Build composes the review queue from the current deck state:
// every due card first (optionally shuffled), then new cards in deck
// order, capped by how much of the per-session allowance is left.
//
// The queue is always rebuilt from scratch, after every grade and
// after every deck or settings mutation, so it can never drift from
// the deck.
func Build(cards []card.Card, set settings.Settings, newUsed int, now time.Time) []card.Card {
	nowMs := now.UnixMilli()

	var due []card.Card
	for _, c := range cards {
		if !c.Srs.New && c.Srs.Due <= nowMs {
			due = append(due, c)
		}
	}
	if set.ShuffleDue {
		rand.Shuffle(len(due), func(i, j int) {
			due[i], due[j] = due[j], due[i]
		})
	}

	allowance := set.NewPerSession - newUsed
	if allowance < 0 {
		allowance = 0
	}
	for _, c := range cards {
		if allowance == 0 {
			break
		}
		if c.Srs.New {
			due = append(due, c)
			allowance--
		}
	}
	return due
}
