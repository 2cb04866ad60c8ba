package srs

import (
	"errors"
	"math"
	"time"
)

// Quality is the reviewer's self-assessed recall outcome.
// Only the three enumerated values are valid input.
type Quality int

const (
	QualityAgain Quality = 1
	QualityGood  Quality = 3
	QualityEasy  Quality = 4
)

var ErrInvalidQuality = errors.New("quality must be 1 (again), 3 (good) or 4 (easy)")

// Valid reports whether q is one of the three accepted grades.
func (q Quality) Valid() bool {
	return q == QualityAgain || q == QualityGood || q == QualityEasy
}

const (
	minEase = 1.3
	maxEase = 3.0

	againDelay   = 10 * time.Minute
	goodInterval = 24 * time.Hour
	easyInterval = 3 * 24 * time.Hour
)

// State is a card's scheduling state. Interval and Due are kept in
// milliseconds so exported decks stay loadable as backups across versions.
type State struct {
	Interval int64   `json:"interval"` // milliseconds
	Ease     float64 `json:"ease"`
	Due      int64   `json:"due"` // Unix milliseconds
	Reps     int     `json:"reps"`
	Lapses   int     `json:"lapses"`
	New      bool    `json:"new"`
}

// NewState returns the scheduling state of a freshly created card.
func NewState(now time.Time) State {
	return State{
		Interval: 0,
		Ease:     2.5,
		Due:      now.UnixMilli(),
		Reps:     0,
		Lapses:   0,
		New:      true,
	}
}

// Grade applies a review outcome to a scheduling state and returns the
// updated state. It is a pure transformation: the input state is not
// modified, and wall-clock time enters only through now.
//
// A card graded for the first time leaves the "new" state permanently.
// Ease stays within [1.3, 3.0] after every update.
func Grade(s State, q Quality, now time.Time) State {
	s.Reps++

	if s.New {
		s.New = false
		switch {
		case q <= 2:
			s.Interval = 0
			s.Due = now.Add(againDelay).UnixMilli()
		case q == QualityGood:
			s.Interval = goodInterval.Milliseconds()
			s.Due = now.UnixMilli() + s.Interval
		default:
			s.Interval = easyInterval.Milliseconds()
			s.Due = now.UnixMilli() + s.Interval
			s.Ease = clampEase(s.Ease + 0.05)
		}
		return s
	}

	switch {
	case q <= 2:
		s.Lapses++
		s.Ease = clampEase(s.Ease - 0.2)
		s.Interval = againDelay.Milliseconds()
	case q == QualityGood:
		s.Ease = clampEase(s.Ease - 0.02)
		s.Interval = max64(goodInterval.Milliseconds(), round(float64(s.Interval)*s.Ease))
	default:
		s.Ease = clampEase(s.Ease + 0.05)
		s.Interval = max64(easyInterval.Milliseconds(), round(float64(s.Interval)*(s.Ease+0.15)))
	}
	s.Due = now.UnixMilli() + s.Interval
	return s
}

func clampEase(e float64) float64 {
	if e < minEase {
		return minEase
	}
	if e > maxEase {
		return maxEase
	}
	return e
}

func round(f float64) int64 {
	return int64(math.Round(f))
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
