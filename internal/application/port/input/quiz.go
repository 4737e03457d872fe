package input

import (
	"context"

	"ia-server/internal/domain/entity"
)

type QuizGenerator interface {
	Generate(ctx context.Context, topic string) (*entity.QuizResult, error)
}
