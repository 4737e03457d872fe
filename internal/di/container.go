package di

import (
	"fmt"
	"net/http"

	"ia-server/internal/adapter/rest"
	"ia-server/internal/application/port/output"
	"ia-server/internal/application/service"
	"ia-server/internal/config"
	"ia-server/internal/domain/entity"
	"ia-server/internal/infrastructure/llm/openrouter"
	"ia-server/internal/infrastructure/llm/sibling"
	"ia-server/internal/infrastructure/prompts"
	"ia-server/internal/infrastructure/render"
	"ia-server/internal/infrastructure/textclean"
	"ia-server/internal/usecase/alexa"
	"ia-server/internal/usecase/ask"
	"ia-server/internal/usecase/quiz"
)

const serviceName = "ia-server"

type Container struct {
	LLM      output.LLMPort
	Logger   output.LoggerPort
	Activity *service.ActivityLogImpl
	Router   http.Handler
}

var routes = []entity.RouteName{
	entity.RoutePerguntar,
	entity.RouteCiborgue,
	entity.RouteAlexa,
	entity.RouteUI,
	entity.RouteQuiz,
}

func NewContainer(cfg config.Config, log output.LoggerPort) (*Container, error) {
	llm := newLLM(cfg, log)

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	profiles := make(map[entity.RouteName]entity.RouteProfile, len(routes))
	for _, name := range routes {
		profiles[name] = cfg.Profile(name)
	}

	activity := service.NewActivityLog(cfg.ActivityCapacity)
	gen := prompts.NewGenerator()

	answerer := ask.New(llm, gen, activity, log)
	quizUC := quiz.New(llm, gen, activity, log, profiles[entity.RouteQuiz])
	dispatcher := alexa.New(answerer, textclean.NewSpeechCleaner(nil), log, profiles[entity.RouteAlexa])

	handler := rest.NewHandler(rest.Deps{
		Answerer: answerer,
		Quiz:     quizUC,
		Alexa:    dispatcher,
		Activity: activity,
		Renderer: renderer,
		Profiles: profiles,
		Capacity: activity.Capacity(),
		Logger:   log,
	})

	return &Container{
		LLM:      llm,
		Logger:   log,
		Activity: activity,
		Router:   rest.NewRouter(handler, rest.NewAccessLogger(serviceName)),
	}, nil
}

func newLLM(cfg config.Config, log output.LoggerPort) output.LLMPort {
	if cfg.UpstreamMode == config.ModeSibling {
		return sibling.NewSiblingAdapter(sibling.Config{
			BaseURL: cfg.SiblingURL,
			Timeout: cfg.UpstreamTimeout,
			Logger:  log.WithField("upstream", "sibling"),
		})
	}

	llmCfg := openrouter.DefaultConfig(cfg.APIKey, cfg.Model)
	llmCfg.BaseURL = cfg.BaseURL
	llmCfg.Timeout = cfg.UpstreamTimeout
	llmCfg.Logger = log.WithField("upstream", "openrouter")
	return openrouter.NewOpenRouterAdapter(llmCfg)
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
