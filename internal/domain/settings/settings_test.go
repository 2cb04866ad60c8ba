package settings_test

import (
	"testing"

	"github.com/wortkarten/backend/internal/domain/settings"
)

func TestDefault(t *testing.T) {
	s := settings.Default()

	if s.NewPerSession != 10 {
		t.Errorf("expected newPerSession 10, got %d", s.NewPerSession)
	}
	if !s.ShuffleDue {
		t.Error("expected shuffleDue to default to true")
	}
	if s.TypingMode || s.TTSEnabled || s.TTSAutoSpeak {
		t.Error("expected typing mode and TTS to default to off")
	}
	if s.TTSRate != 1.0 || s.TTSPitch != 1.0 {
		t.Errorf("expected rate and pitch 1.0, got %v and %v", s.TTSRate, s.TTSPitch)
	}
}

func TestParse_MergesOverDefaults(t *testing.T) {
	s, err := settings.Parse([]byte(`{"newPerSession": 5, "typingMode": true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.NewPerSession != 5 {
		t.Errorf("expected newPerSession 5, got %d", s.NewPerSession)
	}
	if !s.TypingMode {
		t.Error("expected typingMode true")
	}
	// Untouched fields keep their defaults.
	if !s.ShuffleDue {
		t.Error("expected shuffleDue to keep its default true")
	}
	if s.TTSRate != 1.0 {
		t.Errorf("expected default rate 1.0, got %v", s.TTSRate)
	}
}

func TestParse_ExplicitFalseWins(t *testing.T) {
	s, err := settings.Parse([]byte(`{"shuffleDue": false}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ShuffleDue {
		t.Error("expected shuffleDue false when explicitly persisted")
	}
}

func TestParse_MalformedFallsBackToDefaults(t *testing.T) {
	s, err := settings.Parse([]byte(`{not json`))
	if err == nil {
		t.Error("expected a decode error")
	}
	if s != settings.Default() {
		t.Errorf("expected defaults on malformed input, got %+v", s)
	}
}

func TestParse_NegativeNewPerSessionClamped(t *testing.T) {
	s, err := settings.Parse([]byte(`{"newPerSession": -3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.NewPerSession != 0 {
		t.Errorf("expected clamp to 0, got %d", s.NewPerSession)
	}
}
