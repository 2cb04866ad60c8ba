package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wortkarten/backend/internal/domain/card"
)

// ── Request / Response types ────────────────────────────────────────────────

type ImportResult struct {
	Imported int `json:"imported" example:"128"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportDeck downloads the full persisted document.
// @Summary      Export the deck
// @Description  The export contains cards together with their scheduling
// @Description  state, so it is a full backup rather than a share format.
// @Tags         Backup
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]string
// @Router       /export [get]
func (h *Handler) exportDeck(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.Export()
	if err != nil {
		h.logger.Error("export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=wortkarten-backup.json")
	w.Write(body)
}

// importDeck replaces the deck with an uploaded document.
// @Summary      Import a deck
// @Description  The document must contain a cards field; otherwise the import
// @Description  fails and the existing deck is left untouched.
// @Tags         Backup
// @Accept       json
// @Produce      json
// @Success      201  {object}  ImportResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importDeck(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	count, err := h.svc.Import(body)
	if errors.Is(err, card.ErrNoCards) {
		respondError(w, http.StatusBadRequest, "import failed: document has no cards field")
		return
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		respondError(w, http.StatusBadRequest, "import failed: invalid document")
		return
	}
	if err != nil {
		h.logger.Error("import failed", "error", err)
		respondError(w, http.StatusInternalServerError, "import failed")
		return
	}

	respondJSON(w, http.StatusCreated, ImportResult{Imported: count})
}
