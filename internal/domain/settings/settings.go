package settings

import "encoding/json"

// Settings controls session size, shuffle, typing-check mode and
// text-to-speech behavior. It is persisted as its own document,
// independent of the deck.
type Settings struct {
	NewPerSession int     `json:"newPerSession"`
	TypingMode    bool    `json:"typingMode"`
	ShuffleDue    bool    `json:"shuffleDue"`
	TTSEnabled    bool    `json:"ttsEnabled"`
	TTSAutoSpeak  bool    `json:"ttsAutoSpeak"`
	TTSVoiceID    string  `json:"ttsVoiceURI"`
	TTSRate       float64 `json:"ttsRate"`
	TTSPitch      float64 `json:"ttsPitch"`
}

// Default returns the settings applied before anything is persisted.
func Default() Settings {
	return Settings{
		NewPerSession: 10,
		TypingMode:    false,
		ShuffleDue:    true,
		TTSEnabled:    false,
		TTSAutoSpeak:  false,
		TTSVoiceID:    "",
		TTSRate:       1.0,
		TTSPitch:      1.0,
	}
}

// Parse merges a persisted record over the defaults. Fields missing
// from the document keep their default value, so records written by
// older versions keep loading. Malformed input returns the defaults
// along with the decode error.
func Parse(body []byte) (Settings, error) {
	s := Default()
	if err := json.Unmarshal(body, &s); err != nil {
		return Default(), err
	}
	if s.NewPerSession < 0 {
		s.NewPerSession = 0
	}
	return s, nil
}
