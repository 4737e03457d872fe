package rest

import (
	"bytes"
	"net/http"

	"ia-server/internal/domain/entity"
	"ia-server/internal/infrastructure/render"
)

func (h *Handler) FormPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, http.StatusOK, render.FormPage{})
}

func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, http.StatusBadRequest, render.FormPage{Error: "formulário inválido"})
		return
	}

	question := r.PostFormValue("pergunta")
	page := render.FormPage{Question: question}

	res, err := h.answerer.Ask(r.Context(), h.profile(entity.RouteUI), question)
	if err != nil {
		page.Error = entity.UserMessage(err)
		h.renderForm(w, statusFor(err), page)
		return
	}

	page.Answer = res.Answer
	page.DurationMs = res.Duration.Milliseconds()
	h.renderForm(w, http.StatusOK, page)
}

func (h *Handler) InterfacePage(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, http.StatusOK, bytes.NewBuffer(h.renderer.Interface()))
}

func (h *Handler) renderForm(w http.ResponseWriter, status int, page render.FormPage) {
	var buf bytes.Buffer
	if err := h.renderer.Form(&buf, page); err != nil {
		h.logger.Error("Render form failed", "error", err)
		http.Error(w, "erro interno", http.StatusInternalServerError)
		return
	}
	h.writeHTML(w, status, &buf)
}
