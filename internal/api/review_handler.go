package api

import (
	"errors"
	"net/http"

	"github.com/wortkarten/backend/internal/domain/srs"
	"github.com/wortkarten/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type ShownCardResponse struct {
	ID    string `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Front string `json:"front" example:"der Hund"`
}

type ReviewStateResponse struct {
	Phase         string             `json:"phase" example:"awaiting_reveal"`
	Card          *ShownCardResponse `json:"card,omitempty"`
	TypingVisible bool               `json:"typing_visible"`
	Remaining     int                `json:"remaining" example:"4"`
}

type RevealRequest struct {
	Typed string `json:"typed,omitempty" example:"the dog"`
}

type RevealResponse struct {
	Back    string `json:"back" example:"the dog"`
	POS     string `json:"pos,omitempty" example:"noun"`
	Notes   string `json:"notes,omitempty"`
	Verdict string `json:"verdict,omitempty" example:"close_enough"`
}

type GradeRequest struct {
	Quality int `json:"quality" example:"3"`
}

type SpeakRequest struct {
	Side string `json:"side" example:"front"`
}

type StatsResponse struct {
	Due   int `json:"due" example:"7"`
	New   int `json:"new" example:"10"`
	Total int `json:"total" example:"128"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getReview returns the current review state.
// @Summary      Current review state
// @Description  The session phase plus the shown card's front, if any.
// @Tags         Review
// @Produce      json
// @Success      200  {object}  ReviewStateResponse
// @Router       /review [get]
func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toStateResponse(h.svc.Current()))
}

// reveal shows the back of the current card.
// @Summary      Reveal the answer
// @Description  Reveals the back of the shown card. In typing-check mode the
// @Description  typed answer is required and scored; the verdict is advisory.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        body  body      RevealRequest  false  "Typed answer (typing-check mode)"
// @Success      200   {object}  RevealResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no card shown"
// @Router       /review/reveal [post]
func (h *Handler) reveal(w http.ResponseWriter, r *http.Request) {
	var req RevealRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Reveal(req.Typed)
	if errors.Is(err, service.ErrNoCardShown) {
		respondError(w, http.StatusConflict, "no card is currently shown")
		return
	}
	if errors.Is(err, service.ErrAnswerRequired) {
		respondError(w, http.StatusBadRequest, "type your answer first")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "reveal failed")
		return
	}

	respondJSON(w, http.StatusOK, RevealResponse{
		Back:    res.Back,
		POS:     res.POS,
		Notes:   res.Notes,
		Verdict: string(res.Verdict),
	})
}

// grade applies a review outcome to the shown card.
// @Summary      Grade the shown card
// @Description  Applies quality 1 (again), 3 (good) or 4 (easy), persists the
// @Description  deck, rebuilds the queue and returns the next state.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        body  body      GradeRequest  true  "Review outcome"
// @Success      200   {object}  ReviewStateResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no card shown"
// @Failure      500   {object}  map[string]string
// @Router       /review/grade [post]
func (h *Handler) grade(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	st, err := h.svc.Grade(srs.Quality(req.Quality))
	if errors.Is(err, srs.ErrInvalidQuality) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, service.ErrNoCardShown) {
		respondError(w, http.StatusConflict, "no card is currently shown")
		return
	}
	if err != nil {
		h.logger.Error("grade failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}

	respondJSON(w, http.StatusOK, toStateResponse(st))
}

// speak reads the shown card aloud.
// @Summary      Speak the shown card
// @Description  Fire-and-forget: the request returns before speech finishes,
// @Description  and a newer request supersedes an in-flight one.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        body  body   SpeakRequest  true  "Which side to read"
// @Success      202   "accepted"
// @Failure      409   {object}  map[string]string  "no card shown"
// @Router       /review/speak [post]
func (h *Handler) speak(w http.ResponseWriter, r *http.Request) {
	var req SpeakRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Side != "front" && req.Side != "back" {
		respondError(w, http.StatusBadRequest, "side must be front or back")
		return
	}

	if err := h.svc.SpeakShown(req.Side); errors.Is(err, service.ErrNoCardShown) {
		respondError(w, http.StatusConflict, "no card is currently shown")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// getStats returns the review counters.
// @Summary      Review counters
// @Tags         Review
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats := h.svc.Stats()
	respondJSON(w, http.StatusOK, StatsResponse{
		Due:   stats.Due,
		New:   stats.New,
		Total: stats.Total,
	})
}

func toStateResponse(st service.ReviewState) ReviewStateResponse {
	res := ReviewStateResponse{
		Phase:         string(st.Phase),
		TypingVisible: st.TypingVisible,
		Remaining:     st.Remaining,
	}
	if st.Card != nil {
		res.Card = &ShownCardResponse{ID: st.Card.ID, Front: st.Card.Front}
	}
	return res
}
