package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/wortkarten/backend/internal/domain/card"
	"github.com/wortkarten/backend/internal/domain/queue"
	"github.com/wortkarten/backend/internal/domain/settings"
	"github.com/wortkarten/backend/internal/domain/srs"
	"github.com/wortkarten/backend/internal/store"
	"github.com/wortkarten/backend/internal/tts"
	"github.com/wortkarten/backend/internal/typing"
	"github.com/wortkarten/backend/internal/worker"
)

// Phase is the review state machine's observable state.
type Phase string

const (
	PhaseAwaitingReveal Phase = "awaiting_reveal"
	PhaseAwaitingGrade  Phase = "awaiting_grade"
	PhaseEmpty          Phase = "empty"
)

var (
	ErrNoCardShown    = errors.New("no card is currently shown")
	ErrAnswerRequired = errors.New("type your answer first")
)

// ShownCard is the part of the current card visible before reveal.
type ShownCard struct {
	ID    string
	Front string
}

// ReviewState is a snapshot of the session for the presentation surface.
type ReviewState struct {
	Phase         Phase
	Card          *ShownCard
	TypingVisible bool
	Remaining     int // queued cards behind the shown one
}

// RevealResult carries the answer side plus the advisory typing verdict.
type RevealResult struct {
	Back    string
	POS     string
	Notes   string
	Verdict typing.Verdict // empty when typing-check mode is off
}

// Stats are the counters shown above the review panel.
type Stats struct {
	Due   int
	New   int // new cards still introducible this session
	Total int
}

// ReviewService owns the live deck and settings and walks the review
// queue one card at a time. All mutations persist their document and
// rebuild the queue before returning, so the queue always reflects
// current store state. A single mutex serializes every operation;
// there is only ever one reviewer.
type ReviewService struct {
	store    store.Store
	speaker  tts.Speaker
	runner   *worker.Runner
	logger   *slog.Logger
	prefLang string

	mu       sync.Mutex
	deck     *card.Deck
	set      settings.Settings
	queue    []card.Card
	shown    *card.Card
	revealed bool
	newUsed  int // resets only on process restart
	voices   []tts.Voice
}

// NewReviewService loads the persisted documents (degrading to an
// empty deck / default settings, never failing) and builds the first
// queue.
func NewReviewService(st store.Store, sp tts.Speaker, logger *slog.Logger, prefLang string) *ReviewService {
	svc := &ReviewService{
		store:    st,
		speaker:  sp,
		runner:   worker.NewRunner(),
		logger:   logger,
		prefLang: prefLang,
	}

	deck, err := st.LoadDeck()
	switch {
	case err == nil:
		svc.deck = deck
	case errors.Is(err, store.ErrNotFound):
		svc.deck = &card.Deck{Cards: []card.Card{}}
	default:
		logger.Warn("failed to load deck, starting empty", "error", err)
		svc.deck = &card.Deck{Cards: []card.Card{}}
	}

	set, err := st.LoadSettings()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.Warn("failed to load settings, using defaults", "error", err)
	}
	svc.set = set

	svc.rebuild()
	return svc
}

// Close cancels any in-flight speech request.
func (s *ReviewService) Close() {
	s.runner.Stop()
}

// ── Review state machine ────────────────────────────────────────────────────

// rebuild recomputes the queue from the deck and pops its head as the
// shown card. Callers must hold the mutex.
func (s *ReviewService) rebuild() {
	q := queue.Build(s.deck.Cards, s.set, s.newUsed, time.Now())
	if len(q) == 0 {
		s.queue = nil
		s.shown = nil
		s.revealed = false
		return
	}
	head := q[0]
	s.queue = q[1:]
	s.shown = &head
	s.revealed = false
	if s.set.TTSEnabled && s.set.TTSAutoSpeak {
		s.speak(head.Front)
	}
}

func (s *ReviewService) current() ReviewState {
	st := ReviewState{
		Phase:         PhaseEmpty,
		TypingVisible: s.set.TypingMode,
		Remaining:     len(s.queue),
	}
	if s.shown == nil {
		st.Remaining = 0
		return st
	}
	st.Card = &ShownCard{ID: s.shown.ID, Front: s.shown.Front}
	if s.revealed {
		st.Phase = PhaseAwaitingGrade
	} else {
		st.Phase = PhaseAwaitingReveal
	}
	return st
}

// Current returns the session snapshot. An empty session retries the
// rebuild first, so a card coming due surfaces on the next poll.
func (s *ReviewService) Current() ReviewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shown == nil {
		s.rebuild()
	}
	return s.current()
}

// Reveal flips the shown card. In typing-check mode a non-empty typed
// answer is required and scored against the back text; the verdict is
// advisory only and never blocks grading.
func (s *ReviewService) Reveal(typed string) (RevealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shown == nil {
		return RevealResult{}, ErrNoCardShown
	}

	res := RevealResult{
		Back:  s.shown.Back,
		POS:   s.shown.POS,
		Notes: s.shown.Notes,
	}

	if !s.revealed {
		if s.set.TypingMode {
			if strings.TrimSpace(typed) == "" {
				return RevealResult{}, ErrAnswerRequired
			}
			res.Verdict = typing.Check(typed, s.shown.Back)
		}
		s.revealed = true
		if s.set.TTSEnabled && s.set.TTSAutoSpeak {
			s.speak(s.shown.Back)
		}
	}
	return res, nil
}

// Grade applies the review outcome to the shown card, persists the
// deck, rebuilds the queue and returns the next state.
func (s *ReviewService) Grade(q srs.Quality) (ReviewState, error) {
	if !q.Valid() {
		return ReviewState{}, srs.ErrInvalidQuality
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shown == nil {
		return ReviewState{}, ErrNoCardShown
	}
	c := s.deck.Find(s.shown.ID)
	if c == nil {
		// Card vanished under us (deleted mid-review); just move on.
		s.rebuild()
		return s.current(), nil
	}

	wasNew := c.Srs.New
	c.Srs = srs.Grade(c.Srs, q, time.Now())
	if wasNew {
		s.newUsed++
	}

	if err := s.store.SaveDeck(s.deck); err != nil {
		return ReviewState{}, fmt.Errorf("failed to save deck: %w", err)
	}
	s.rebuild()
	return s.current(), nil
}

// Stats reports the review counters. The "new" count is capped by the
// remaining session allowance, not just the deck contents.
func (s *ReviewService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMs := time.Now().UnixMilli()
	st := Stats{Total: len(s.deck.Cards)}
	newAvailable := 0
	for _, c := range s.deck.Cards {
		if c.Srs.New {
			newAvailable++
		} else if c.Srs.Due <= nowMs {
			st.Due++
		}
	}

	allowance := s.set.NewPerSession - s.newUsed
	if allowance < 0 {
		allowance = 0
	}
	st.New = newAvailable
	if st.New > allowance {
		st.New = allowance
	}
	return st
}

// ── Deck management ─────────────────────────────────────────────────────────

// AddCard appends a card to the deck. Empty front/back are permitted.
func (s *ReviewService) AddCard(front, back, pos, notes string) (card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := card.New(front, back, pos, notes, time.Now())
	s.deck.Cards = append(s.deck.Cards, c)
	if err := s.store.SaveDeck(s.deck); err != nil {
		return card.Card{}, fmt.Errorf("failed to save deck: %w", err)
	}
	s.rebuild()
	return c, nil
}

// BulkAdd parses "front = back" lines and adds one card per parsable
// line, reporting how many lines were added and skipped.
func (s *ReviewService) BulkAdd(text string) (added, skipped int, err error) {
	entries, skipped := card.ParseBulk(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, e := range entries {
		s.deck.Cards = append(s.deck.Cards, card.New(e.Front, e.Back, "", "", now))
	}
	if len(entries) > 0 {
		if err := s.store.SaveDeck(s.deck); err != nil {
			return 0, skipped, fmt.Errorf("failed to save deck: %w", err)
		}
		s.rebuild()
	}
	return len(entries), skipped, nil
}

// DeleteCard removes a card by id; deleting an unknown id is a no-op.
func (s *ReviewService) DeleteCard(cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.deck.Remove(cardID) {
		return nil
	}
	if err := s.store.SaveDeck(s.deck); err != nil {
		return fmt.Errorf("failed to save deck: %w", err)
	}
	s.rebuild()
	return nil
}

// Cards returns a copy of the deck in insertion order.
func (s *ReviewService) Cards() []card.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]card.Card, len(s.deck.Cards))
	copy(out, s.deck.Cards)
	return out
}

// Import replaces the whole deck with the parsed document. A document
// without a cards field fails the operation and leaves the existing
// deck untouched.
func (s *ReviewService) Import(body []byte) (int, error) {
	deck, err := card.ParseDeck(body)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deck = deck
	if err := s.store.SaveDeck(s.deck); err != nil {
		return 0, fmt.Errorf("failed to save deck: %w", err)
	}
	s.rebuild()
	return len(deck.Cards), nil
}

// Export returns the whole persisted document, cards together with
// their scheduling state, so an export is a full backup.
func (s *ReviewService) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return marshalDeck(s.deck)
}

// ClearAll replaces the deck with an empty one.
func (s *ReviewService) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deck = &card.Deck{Cards: []card.Card{}}
	if err := s.store.SaveDeck(s.deck); err != nil {
		return fmt.Errorf("failed to save deck: %w", err)
	}
	s.rebuild()
	return nil
}

// ── Settings ────────────────────────────────────────────────────────────────

func (s *ReviewService) Settings() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}

// UpdateSettings persists the new record and rebuilds the queue under it.
func (s *ReviewService) UpdateSettings(set settings.Settings) error {
	if set.NewPerSession < 0 {
		set.NewPerSession = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = set
	if err := s.store.SaveSettings(set); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.rebuild()
	return nil
}

// ── Text-to-speech ──────────────────────────────────────────────────────────

// Voices fetches the speech service's current voice list and caches it
// for voice selection.
func (s *ReviewService) Voices(ctx context.Context) ([]tts.Voice, error) {
	voices, err := s.speaker.Voices(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.voices = voices
	s.mu.Unlock()
	return voices, nil
}

// SpeakShown reads the shown card's front or back aloud. A no-op when
// text-to-speech is disabled.
func (s *ReviewService) SpeakShown(side string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shown == nil {
		return ErrNoCardShown
	}
	text := s.shown.Front
	if side == "back" {
		text = s.shown.Back
	}
	if s.set.TTSEnabled {
		s.speak(text)
	}
	return nil
}

// speak submits a fire-and-forget utterance; a new request supersedes
// any in-flight one. Failures are logged and otherwise ignored.
// Callers must hold the mutex.
func (s *ReviewService) speak(text string) {
	u := tts.Utterance{
		Text:  text,
		Voice: tts.ChooseVoice(s.voices, s.set.TTSVoiceID, s.prefLang),
		Rate:  s.set.TTSRate,
		Pitch: s.set.TTSPitch,
	}
	logger := s.logger
	speaker := s.speaker
	s.runner.Submit(func(ctx context.Context) {
		if err := speaker.Speak(ctx, u); err != nil {
			logger.Debug("speech request failed", "error", err)
		}
	})
}

func marshalDeck(d *card.Deck) ([]byte, error) {
	body, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode deck: %w", err)
	}
	return body, nil
}
