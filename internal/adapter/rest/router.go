package rest

import (
	"net/http"

	"ia-server/internal/domain/entity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/rs/zerolog"
)

// NewAccessLogger builds the zerolog logger used for per-request access
// lines.
func NewAccessLogger(service string) zerolog.Logger {
	return httplog.NewLogger(service, httplog.Options{
		JSON:    true,
		Concise: true,
	})
}

func NewRouter(h *Handler, accessLog zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(accessLog))
	r.Use(middleware.Recoverer)

	r.Get("/", h.Health)

	r.Post("/perguntar", h.Ask(entity.RoutePerguntar))
	r.Post("/ciborgue/perguntar", h.Ask(entity.RouteCiborgue))
	r.Post("/alexa", h.Alexa)
	r.Get("/quiz/pergunta", h.Quiz)

	r.Get("/ui", h.FormPage)
	r.Post("/ui", h.SubmitForm)
	r.Get("/interface", h.InterfacePage)

	r.Get("/dashboard", h.Dashboard)
	r.Get("/atividade", h.Activity)

	return r
}
