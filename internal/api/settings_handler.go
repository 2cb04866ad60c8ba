package api

import (
	"net/http"

	"github.com/wortkarten/backend/internal/domain/settings"
	"github.com/wortkarten/backend/internal/tts"
)

// ── Request / Response types ────────────────────────────────────────────────

type SettingsResponse struct {
	NewPerSession int     `json:"newPerSession" example:"10"`
	TypingMode    bool    `json:"typingMode" example:"false"`
	ShuffleDue    bool    `json:"shuffleDue" example:"true"`
	TTSEnabled    bool    `json:"ttsEnabled" example:"false"`
	TTSAutoSpeak  bool    `json:"ttsAutoSpeak" example:"false"`
	TTSVoiceID    string  `json:"ttsVoiceURI" example:"de-thorsten"`
	TTSRate       float64 `json:"ttsRate" example:"1.0"`
	TTSPitch      float64 `json:"ttsPitch" example:"1.0"`
}

type VoiceResponse struct {
	ID   string `json:"id" example:"de-thorsten"`
	Name string `json:"name" example:"Thorsten"`
	Lang string `json:"lang" example:"de-DE"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getSettings returns the active settings.
// @Summary      Get settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  SettingsResponse
// @Router       /settings [get]
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toSettingsResponse(h.svc.Settings()))
}

// updateSettings replaces the settings record.
// @Summary      Update settings
// @Description  Persists the record and rebuilds the review queue under it.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        body  body      SettingsResponse  true  "New settings"
// @Success      200   {object}  SettingsResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /settings [put]
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsResponse
	if !decodeJSON(w, r, &req) {
		return
	}

	set := settings.Settings{
		NewPerSession: req.NewPerSession,
		TypingMode:    req.TypingMode,
		ShuffleDue:    req.ShuffleDue,
		TTSEnabled:    req.TTSEnabled,
		TTSAutoSpeak:  req.TTSAutoSpeak,
		TTSVoiceID:    req.TTSVoiceID,
		TTSRate:       req.TTSRate,
		TTSPitch:      req.TTSPitch,
	}
	if err := h.svc.UpdateSettings(set); err != nil {
		h.logger.Error("failed to save settings", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	respondJSON(w, http.StatusOK, toSettingsResponse(h.svc.Settings()))
}

// listVoices returns the speech service's current voices.
// @Summary      List voices
// @Description  The list comes from the speech service and may change between
// @Description  calls. When the service is unavailable the list is empty;
// @Description  text-to-speech degrades, it never errors the UI.
// @Tags         Settings
// @Produce      json
// @Success      200  {array}  VoiceResponse
// @Router       /settings/voices [get]
func (h *Handler) listVoices(w http.ResponseWriter, r *http.Request) {
	voices, err := h.svc.Voices(r.Context())
	if err != nil {
		h.logger.Debug("voice list unavailable", "error", err)
		voices = []tts.Voice{}
	}

	out := make([]VoiceResponse, len(voices))
	for i, v := range voices {
		out[i] = VoiceResponse{ID: v.ID, Name: v.Name, Lang: v.Lang}
	}
	respondJSON(w, http.StatusOK, out)
}

func toSettingsResponse(s settings.Settings) SettingsResponse {
	return SettingsResponse{
		NewPerSession: s.NewPerSession,
		TypingMode:    s.TypingMode,
		ShuffleDue:    s.ShuffleDue,
		TTSEnabled:    s.TTSEnabled,
		TTSAutoSpeak:  s.TTSAutoSpeak,
		TTSVoiceID:    s.TTSVoiceID,
		TTSRate:       s.TTSRate,
		TTSPitch:      s.TTSPitch,
	}
}
