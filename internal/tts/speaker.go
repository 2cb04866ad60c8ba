package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Speaker vocalizes text through a host-provided speech service.
// Both operations are best effort: callers treat every failure as
// "the feature is unavailable right now".
type Speaker interface {
	Speak(ctx context.Context, u Utterance) error
	Voices(ctx context.Context) ([]Voice, error)
}

// Utterance is a single speech request.
type Utterance struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice,omitempty"` // empty = service default
	Rate  float64 `json:"rate"`
	Pitch float64 `json:"pitch"`
}

// Voice describes one voice offered by the speech service.
type Voice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Lang string `json:"lang"`
}

// SpeakError is returned when the speech service rejects or fails a
// request, so the caller can tell "bad request" from "unreachable".
type SpeakError struct {
	Reason  string
	Wrapped error
}

func (e *SpeakError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("speech failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("speech failed: %s", e.Reason)
}

func (e *SpeakError) Unwrap() error {
	return e.Wrapped
}

// HTTPSpeaker talks to a local speech daemon (mimic, piper-http and
// the like) over its JSON API.
type HTTPSpeaker struct {
	url    string       // e.g. "http://localhost:5002"
	client *http.Client // reused across calls
}

// Compile-time check: *HTTPSpeaker satisfies the Speaker interface.
var _ Speaker = (*HTTPSpeaker)(nil)

// NewHTTPSpeaker creates a speaker that calls the given speech daemon.
func NewHTTPSpeaker(url string) *HTTPSpeaker {
	return &HTTPSpeaker{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Speak asks the daemon to vocalize the utterance. Playback happens on
// the daemon side; this call returns once the request is accepted.
func (s *HTTPSpeaker) Speak(ctx context.Context, u Utterance) error {
	body, err := json.Marshal(u)
	if err != nil {
		return &SpeakError{Reason: "failed to marshal request", Wrapped: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/api/speak", bytes.NewReader(body))
	if err != nil {
		return &SpeakError{Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &SpeakError{Reason: "speech service unreachable", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return &SpeakError{Reason: fmt.Sprintf("speech service returned status %d", resp.StatusCode)}
	}
	return nil
}

// Voices fetches the daemon's current voice list. The list may change
// between calls as the host adds or removes voices.
func (s *HTTPSpeaker) Voices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"/api/voices", nil)
	if err != nil {
		return nil, &SpeakError{Reason: "failed to create request", Wrapped: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SpeakError{Reason: "speech service unreachable", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &SpeakError{Reason: fmt.Sprintf("speech service returned status %d", resp.StatusCode)}
	}

	var voices []Voice
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, &SpeakError{Reason: "invalid voice list", Wrapped: err}
	}
	return voices, nil
}

// ChooseVoice picks the voice id to speak with: the saved voice if the
// service still offers it, otherwise the first voice matching the
// preferred language prefix, otherwise empty (service default).
func ChooseVoice(voices []Voice, savedID, preferredLang string) string {
	for _, v := range voices {
		if savedID != "" && v.ID == savedID {
			return v.ID
		}
	}
	if preferredLang != "" {
		prefix := strings.ToLower(preferredLang)
		for _, v := range voices {
			if strings.HasPrefix(strings.ToLower(v.Lang), prefix) {
				return v.ID
			}
		}
	}
	return ""
}
