package input

import (
	"context"
	"time"

	"ia-server/internal/domain/entity"
)

type AskResult struct {
	Answer   string
	Duration time.Duration
}

type QuestionAnswerer interface {
	Ask(ctx context.Context, profile entity.RouteProfile, question string) (*AskResult, error)
}
