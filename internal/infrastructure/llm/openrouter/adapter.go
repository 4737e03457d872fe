package openrouter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"

	"github.com/sashabaranov/go-openai"
	"github.com/segmentio/encoding/json"
)

var _ output.LLMPort = (*OpenRouterAdapter)(nil)

type OpenRouterAdapter struct {
	client *openai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	// AppTitle is sent as X-Title so requests show up by name on the
	// OpenRouter dashboard.
	AppTitle string
	Logger   output.LoggerPort
}

func DefaultConfig(apiKey, model string) Config {
	return Config{
		APIKey:   apiKey,
		Model:    model,
		BaseURL:  "https://openrouter.ai/api/v1",
		Timeout:  30 * time.Second,
		AppTitle: "ia-server",
	}
}

type loggingTransport struct {
	base     http.RoundTripper
	logger   output.LoggerPort
	appTitle string
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.appTitle != "" {
		req = req.Clone(req.Context())
		req.Header.Set("X-Title", t.appTitle)
	}

	if t.logger != nil {
		var bodyBytes []byte
		if req.Body != nil {
			bodyBytes, _ = io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		var requestData map[string]any
		if len(bodyBytes) > 0 {
			_ = json.Unmarshal(bodyBytes, &requestData)
		}

		t.logger.Debug("Upstream request",
			"method", req.Method,
			"url", req.URL.String(),
			"body", requestData,
		)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	if t.logger != nil {
		if err != nil {
			t.logger.Warn("Upstream transport error", "error", err, "durationMs", time.Since(start).Milliseconds())
		} else {
			t.logger.Debug("Upstream response",
				"status", resp.Status,
				"statusCode", resp.StatusCode,
				"durationMs", time.Since(start).Milliseconds(),
			)
		}
	}

	return resp, err
}

func NewOpenRouterAdapter(cfg Config) *OpenRouterAdapter {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	config.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &loggingTransport{
			base:     http.DefaultTransport,
			logger:   cfg.Logger,
			appTitle: cfg.AppTitle,
		},
	}

	return &OpenRouterAdapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Chat sends the messages as one completion request and returns the first
// choice, trimmed. Errors match one of the entity.ErrUpstream* sentinels.
func (a *OpenRouterAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", entity.ErrUpstreamEmpty)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: first choice has no content", entity.ErrUpstreamEmpty)
	}

	return &output.ChatResponse{
		Message: entity.Message{
			Role:    entity.RoleAssistant,
			Content: content,
		},
		Model: resp.Model,
	}, nil
}

func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: status %d: %s", entity.ErrUpstreamRejected, apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: status %d", entity.ErrUpstreamRejected, reqErr.HTTPStatusCode)
	}

	if isTransportError(err) {
		return fmt.Errorf("%w: %v", entity.ErrUpstreamConnection, err)
	}

	return fmt.Errorf("%w: %v", entity.ErrUpstreamMalformed, err)
}

func isTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return result
}
