package rest

import (
	"bytes"
	"net/http"

	"ia-server/internal/application/port/input"
	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"
	"ia-server/internal/infrastructure/render"
)

const LivenessMessage = "Servidor da IA está online."

type Deps struct {
	Answerer input.QuestionAnswerer
	Quiz     input.QuizGenerator
	Alexa    input.AlexaDispatcher
	Activity output.ActivityLog
	Renderer *render.Renderer
	Profiles map[entity.RouteName]entity.RouteProfile
	Capacity int
	Logger   output.LoggerPort
}

type Handler struct {
	answerer input.QuestionAnswerer
	quiz     input.QuizGenerator
	alexa    input.AlexaDispatcher
	activity output.ActivityLog
	renderer *render.Renderer
	profiles map[entity.RouteName]entity.RouteProfile
	capacity int
	logger   output.LoggerPort
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		answerer: d.Answerer,
		quiz:     d.Quiz,
		alexa:    d.Alexa,
		activity: d.Activity,
		renderer: d.Renderer,
		profiles: d.Profiles,
		capacity: d.Capacity,
		logger:   d.Logger.WithField("component", "http"),
	}
}

// profile falls back to a non-recording default-prompt profile for routes
// missing from the table.
func (h *Handler) profile(name entity.RouteName) entity.RouteProfile {
	if p, ok := h.profiles[name]; ok {
		return p
	}
	return entity.RouteProfile{Name: name, Prompt: entity.PromptDefault}
}

func statusFor(err error) int {
	if entity.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(LivenessMessage))
}

func (h *Handler) writeHTML(w http.ResponseWriter, status int, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
