package output

import "ia-server/internal/domain/entity"

type PromptPort interface {
	Question(style entity.PromptStyle, question string) (string, error)
	Quiz(topic string) (string, error)
}
