package input

import (
	"context"

	"ia-server/internal/domain/entity"
)

type AlexaDispatcher interface {
	Dispatch(ctx context.Context, req entity.AlexaRequest) entity.AlexaResponse
}
