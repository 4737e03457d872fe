package sibling

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"

	"github.com/segmentio/encoding/json"
)

var _ output.LLMPort = (*SiblingAdapter)(nil)

const (
	askPath         = "/perguntar"
	maxResponseSize = 1 << 20
)

// SiblingAdapter uses another instance of this service as its upstream by
// calling its POST /perguntar route.
type SiblingAdapter struct {
	baseURL string
	client  *http.Client
	logger  output.LoggerPort
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  output.LoggerPort
}

type askRequest struct {
	Question string `json:"pergunta"`
}

type askResponse struct {
	Answer string `json:"resposta"`
	Error  string `json:"erro"`
}

func NewSiblingAdapter(cfg Config) *SiblingAdapter {
	return &SiblingAdapter{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger,
	}
}

// Chat forwards the last user message. Any prompt wrapping has already been
// applied by the caller, so the sibling should use its default template.
func (a *SiblingAdapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	payload, err := json.Marshal(askRequest{Question: entity.LastUserContent(req.Messages)})
	if err != nil {
		return nil, fmt.Errorf("encode sibling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+askPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build sibling request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstreamConnection, err)
	}
	defer resp.Body.Close()

	if a.logger != nil {
		a.logger.Debug("Sibling response", "status", resp.StatusCode, "durationMs", time.Since(start).Milliseconds())
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", entity.ErrUpstreamConnection, err)
	}

	var decoded askResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: status %d", entity.ErrUpstreamRejected, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstreamMalformed, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, siblingError(resp.StatusCode, decoded.Error)
	}

	answer := strings.TrimSpace(decoded.Answer)
	if answer == "" {
		return nil, fmt.Errorf("%w: sibling answered without resposta", entity.ErrUpstreamEmpty)
	}

	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: answer},
		Model:   "sibling",
	}, nil
}

// siblingError keeps the sibling's own classification when its message is
// one of ours, so an empty answer two hops away is still reported as empty.
func siblingError(status int, msg string) error {
	for _, sentinel := range []error{
		entity.ErrUpstreamConnection,
		entity.ErrUpstreamEmpty,
		entity.ErrUpstreamMalformed,
	} {
		if msg != "" && msg == entity.UserMessage(sentinel) {
			return fmt.Errorf("%w: relayed by sibling", sentinel)
		}
	}
	err := fmt.Errorf("%w: status %d", entity.ErrUpstreamRejected, status)
	if msg != "" {
		err = fmt.Errorf("%w: %s", err, msg)
	}
	return err
}
