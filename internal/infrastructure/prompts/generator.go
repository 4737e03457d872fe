package prompts

import (
	"fmt"
	"strings"

	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"

	lcprompts "github.com/tmc/langchaingo/prompts"
)

var _ output.PromptPort = (*Generator)(nil)

const (
	varQuestion = "pergunta"
	varTopic    = "tema"
)

type Generator struct {
	questions map[entity.PromptStyle]lcprompts.PromptTemplate
	quiz      lcprompts.PromptTemplate
}

func NewGenerator() *Generator {
	return NewGeneratorFromTemplates(QuestionDefaultPrompt, QuestionShortPrompt, QuizPrompt)
}

func NewGeneratorFromTemplates(defaultTmpl, shortTmpl, quizTmpl string) *Generator {
	return &Generator{
		questions: map[entity.PromptStyle]lcprompts.PromptTemplate{
			entity.PromptDefault: lcprompts.NewPromptTemplate(defaultTmpl, []string{varQuestion}),
			entity.PromptShort:   lcprompts.NewPromptTemplate(shortTmpl, []string{varQuestion}),
		},
		quiz: lcprompts.NewPromptTemplate(quizTmpl, []string{varTopic}),
	}
}

// Question wraps a user question in the template for style. Unknown styles
// use the default template.
func (g *Generator) Question(style entity.PromptStyle, question string) (string, error) {
	tmpl, ok := g.questions[style]
	if !ok {
		tmpl = g.questions[entity.PromptDefault]
	}

	out, err := tmpl.Format(map[string]any{varQuestion: question})
	if err != nil {
		return "", fmt.Errorf("format %s prompt: %w", style, err)
	}
	return strings.TrimSpace(out), nil
}

func (g *Generator) Quiz(topic string) (string, error) {
	out, err := g.quiz.Format(map[string]any{varTopic: strings.TrimSpace(topic)})
	if err != nil {
		return "", fmt.Errorf("format quiz prompt: %w", err)
	}
	return strings.TrimSpace(out), nil
}
