package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Review session
	mux.HandleFunc("GET /review", h.getReview)
	mux.HandleFunc("POST /review/reveal", h.reveal)
	mux.HandleFunc("POST /review/grade", h.grade)
	mux.HandleFunc("POST /review/speak", h.speak)
	mux.HandleFunc("GET /stats", h.getStats)

	// Deck management
	mux.HandleFunc("GET /cards", h.listCards)
	mux.HandleFunc("POST /cards", h.addCard)
	mux.HandleFunc("DELETE /cards", h.clearAll)
	mux.HandleFunc("POST /cards/bulk", h.bulkAdd)
	mux.HandleFunc("DELETE /cards/{cardID}", h.deleteCard)

	// Backup
	mux.HandleFunc("GET /export", h.exportDeck)
	mux.HandleFunc("POST /import", h.importDeck)

	// Settings
	mux.HandleFunc("GET /settings", h.getSettings)
	mux.HandleFunc("PUT /settings", h.updateSettings)
	mux.HandleFunc("GET /settings/voices", h.listVoices)
}
