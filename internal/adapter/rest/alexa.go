package rest

import (
	"net/http"

	"ia-server/internal/domain/entity"
)

func (h *Handler) Alexa(w http.ResponseWriter, r *http.Request) {
	var req entity.AlexaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo inválido")
		return
	}

	writeJSON(w, http.StatusOK, h.alexa.Dispatch(r.Context(), req))
}
