package config

import (
	"fmt"
	"time"

	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"

	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	ModeOpenRouter = "openrouter"
	ModeSibling    = "sibling"

	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-3.5-turbo"
	DefaultPort    = 3000
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	APIKey          string
	Model           string
	BaseURL         string
	UpstreamMode    string
	SiblingURL      string
	UpstreamTimeout time.Duration

	Port             int
	ActivityCapacity int
	LogLevel         string

	// Record flags per route.
	Record map[entity.RouteName]bool
}

var shortPromptRoutes = map[entity.RouteName]bool{
	entity.RouteCiborgue: true,
	entity.RouteAlexa:    true,
}

// Load reads the service configuration and validates it.
func Load(env output.ConfigPort) (Config, error) {
	cfg := Config{
		APIKey:          env.Get("OPENROUTER_API_KEY"),
		Model:           env.GetWithDefault("OPENROUTER_MODEL_NAME", DefaultModel),
		BaseURL:         env.GetWithDefault("OPENROUTER_BASE_URL", DefaultBaseURL),
		UpstreamMode:    env.GetWithDefault("UPSTREAM_MODE", ModeOpenRouter),
		SiblingURL:      env.Get("SIBLING_URL"),
		UpstreamTimeout: env.GetDuration("UPSTREAM_TIMEOUT", DefaultTimeout),

		Port:             env.GetInt("PORT", DefaultPort),
		ActivityCapacity: env.GetInt("ACTIVITY_LOG_CAPACITY", entity.DefaultActivityCapacity),
		LogLevel:         env.GetWithDefault("LOG_LEVEL", "info"),

		Record: map[entity.RouteName]bool{
			entity.RoutePerguntar: env.GetBool("LOG_PERGUNTAR", true),
			entity.RouteCiborgue:  env.GetBool("LOG_CIBORGUE", true),
			entity.RouteAlexa:     env.GetBool("LOG_ALEXA", true),
			entity.RouteUI:        env.GetBool("LOG_UI", true),
			entity.RouteQuiz:      env.GetBool("LOG_QUIZ", false),
		},
	}

	if cfg.ActivityCapacity < 1 {
		cfg.ActivityCapacity = entity.DefaultActivityCapacity
	}
	if cfg.UpstreamTimeout < 0 {
		cfg.UpstreamTimeout = 0
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	apiKeyRules := []ozzo.Rule{}
	siblingRules := []ozzo.Rule{is.URL}
	if c.UpstreamMode == ModeSibling {
		siblingRules = append(siblingRules, ozzo.Required)
	} else {
		apiKeyRules = append(apiKeyRules, ozzo.Required)
	}

	return ozzo.ValidateStruct(&c,
		ozzo.Field(&c.UpstreamMode, ozzo.Required, ozzo.In(ModeOpenRouter, ModeSibling)),
		ozzo.Field(&c.APIKey, apiKeyRules...),
		ozzo.Field(&c.SiblingURL, siblingRules...),
		ozzo.Field(&c.BaseURL, ozzo.Required, is.URL),
		ozzo.Field(&c.Model, ozzo.Required),
		ozzo.Field(&c.Port, ozzo.Required, ozzo.Min(1), ozzo.Max(65535)),
	)
}

// Profile returns the behavior flags for a route.
func (c Config) Profile(name entity.RouteName) entity.RouteProfile {
	style := entity.PromptDefault
	if shortPromptRoutes[name] {
		style = entity.PromptShort
	}
	return entity.RouteProfile{
		Name:   name,
		Prompt: style,
		Record: c.Record[name],
	}
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
