package api

import (
	"net/http"

	"github.com/wortkarten/backend/internal/domain/card"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddCardRequest struct {
	Front string `json:"front" example:"der Hund"`
	Back  string `json:"back" example:"the dog"`
	POS   string `json:"pos,omitempty" example:"noun"`
	Notes string `json:"notes,omitempty" example:"plural: die Hunde"`
}

type CardResponse struct {
	ID       string  `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Front    string  `json:"front" example:"der Hund"`
	Back     string  `json:"back" example:"the dog"`
	POS      string  `json:"pos,omitempty" example:"noun"`
	Notes    string  `json:"notes,omitempty"`
	Created  int64   `json:"created" example:"1773392400000"`
	Interval int64   `json:"interval" example:"259200000"`
	Due      int64   `json:"due" example:"1773651600000"`
	Reps     int     `json:"reps" example:"3"`
	Lapses   int     `json:"lapses" example:"1"`
	Ease     float64 `json:"ease" example:"2.5"`
	New      bool    `json:"new" example:"false"`
}

type BulkAddRequest struct {
	Text string `json:"text" example:"Hund = dog\nKatze = cat"`
}

type BulkAddResponse struct {
	Added   int `json:"added" example:"2"`
	Skipped int `json:"skipped" example:"1"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCards lists the deck in insertion order.
// @Summary      List cards
// @Tags         Deck
// @Produce      json
// @Success      200  {array}  CardResponse
// @Router       /cards [get]
func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	cards := h.svc.Cards()
	out := make([]CardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	respondJSON(w, http.StatusOK, out)
}

// addCard creates a single card.
// @Summary      Add a card
// @Description  Text fields are trimmed. Empty front/back are permitted; the
// @Description  front-end decides whether to require them.
// @Tags         Deck
// @Accept       json
// @Produce      json
// @Param        body  body      AddCardRequest  true  "Card to add"
// @Success      201   {object}  CardResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cards [post]
func (h *Handler) addCard(w http.ResponseWriter, r *http.Request) {
	var req AddCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.AddCard(req.Front, req.Back, req.POS, req.Notes)
	if err != nil {
		h.logger.Error("failed to add card", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}
	respondJSON(w, http.StatusCreated, toCardResponse(c))
}

// bulkAdd creates one card per "front = back" line.
// @Summary      Bulk-add cards
// @Description  Splits the text into lines and each line on its first '='.
// @Description  Lines without '=' are skipped and counted.
// @Tags         Deck
// @Accept       json
// @Produce      json
// @Param        body  body      BulkAddRequest  true  "Lines to parse"
// @Success      201   {object}  BulkAddResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cards/bulk [post]
func (h *Handler) bulkAdd(w http.ResponseWriter, r *http.Request) {
	var req BulkAddRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	added, skipped, err := h.svc.BulkAdd(req.Text)
	if err != nil {
		h.logger.Error("bulk add failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}
	respondJSON(w, http.StatusCreated, BulkAddResponse{Added: added, Skipped: skipped})
}

// deleteCard removes a card by id.
// @Summary      Delete a card
// @Description  Deleting an unknown id is a no-op, not an error.
// @Tags         Deck
// @Param        cardID  path  string  true  "Card id"
// @Success      204  "deleted"
// @Failure      500  {object}  map[string]string
// @Router       /cards/{cardID} [delete]
func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCard(r.PathValue("cardID")); err != nil {
		h.logger.Error("failed to delete card", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clearAll deletes every card and all progress.
// @Summary      Clear the deck
// @Tags         Deck
// @Success      204  "cleared"
// @Failure      500  {object}  map[string]string
// @Router       /cards [delete]
func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearAll(); err != nil {
		h.logger.Error("failed to clear deck", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toCardResponse(c card.Card) CardResponse {
	return CardResponse{
		ID:       c.ID,
		Front:    c.Front,
		Back:     c.Back,
		POS:      c.POS,
		Notes:    c.Notes,
		Created:  c.Created,
		Interval: c.Srs.Interval,
		Due:      c.Srs.Due,
		Reps:     c.Srs.Reps,
		Lapses:   c.Srs.Lapses,
		Ease:     c.Srs.Ease,
		New:      c.Srs.New,
	}
}
