package rest

import (
	"net/http"

	"ia-server/internal/domain/entity"
)

type askRequest struct {
	Question string `json:"pergunta"`
}

type askResponse struct {
	Answer string `json:"resposta"`
}

// Ask serves POST /perguntar and its variants; route picks the profile.
func (h *Handler) Ask(route entity.RouteName) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "corpo inválido")
			return
		}

		res, err := h.answerer.Ask(r.Context(), h.profile(route), req.Question)
		if err != nil {
			writeError(w, statusFor(err), entity.UserMessage(err))
			return
		}

		writeJSON(w, http.StatusOK, askResponse{Answer: res.Answer})
	}
}
