package rest

import (
	"bytes"
	"net/http"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.Dashboard(&buf, h.activity.Snapshot(), h.capacity); err != nil {
		h.logger.Error("Render dashboard failed", "error", err)
		http.Error(w, "erro interno", http.StatusInternalServerError)
		return
	}
	h.writeHTML(w, http.StatusOK, &buf)
}

// Activity serves the same snapshot as JSON.
func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.activity.Snapshot())
}
