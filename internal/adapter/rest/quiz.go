package rest

import (
	"net/http"

	"ia-server/internal/domain/entity"
)

// Quiz serves GET /quiz/pergunta. The body is the object produced by the
// model, byte for byte.
func (h *Handler) Quiz(w http.ResponseWriter, r *http.Request) {
	result, err := h.quiz.Generate(r.Context(), r.URL.Query().Get("tema"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, entity.UserMessage(err))
		return
	}

	writeRawJSON(w, http.StatusOK, result.Raw)
}
