package prompts

import (
	"strings"
	"testing"

	"ia-server/internal/domain/entity"
)

func TestQuestionDefaultIsVerbatim(t *testing.T) {
	g := NewGenerator()

	result, err := g.Question(entity.PromptDefault, "Qual a capital do Brasil?")
	if err != nil {
		t.Fatalf("Question failed: %v", err)
	}

	if result != "Qual a capital do Brasil?" {
		t.Errorf("expected question unchanged, got %q", result)
	}
}

func TestQuestionShortWrapsQuestion(t *testing.T) {
	g := NewGenerator()

	result, err := g.Question(entity.PromptShort, "Quem foi Santos Dumont?")
	if err != nil {
		t.Fatalf("Question failed: %v", err)
	}

	if !strings.Contains(result, "Quem foi Santos Dumont?") {
		t.Error("short prompt should contain the question")
	}

	if !strings.Contains(result, "curta") {
		t.Error("short prompt should ask for a short answer")
	}
}

func TestQuestionKeepsTemplateSyntaxInValues(t *testing.T) {
	g := NewGenerator()

	result, err := g.Question(entity.PromptDefault, "o que faz {{.pergunta}}?")
	if err != nil {
		t.Fatalf("Question failed: %v", err)
	}

	if result != "o que faz {{.pergunta}}?" {
		t.Errorf("template syntax in the question must not be expanded, got %q", result)
	}
}

func TestQuestionUnknownStyleFallsBack(t *testing.T) {
	g := NewGenerator()

	result, err := g.Question(entity.PromptStyle("poetic"), "oi")
	if err != nil {
		t.Fatalf("Question failed: %v", err)
	}

	if result != "oi" {
		t.Errorf("expected default template, got %q", result)
	}
}

func TestQuizWithAndWithoutTopic(t *testing.T) {
	g := NewGenerator()

	plain, err := g.Quiz("")
	if err != nil {
		t.Fatalf("Quiz failed: %v", err)
	}
	if strings.Contains(plain, "sobre o tema") {
		t.Error("prompt without topic should not mention a topic")
	}
	if !strings.Contains(plain, "alternativas") {
		t.Error("prompt should describe the JSON shape")
	}

	themed, err := g.Quiz("astronomia")
	if err != nil {
		t.Fatalf("Quiz failed: %v", err)
	}
	if !strings.Contains(themed, `sobre o tema "astronomia"`) {
		t.Errorf("expected topic in prompt, got %q", themed)
	}
}

func TestInvalidTemplate(t *testing.T) {
	g := NewGeneratorFromTemplates("{{.pergunta", "{{.pergunta}}", "{{.tema}}")

	_, err := g.Question(entity.PromptDefault, "oi")
	if err == nil {
		t.Error("expected error for invalid template, got nil")
	}
}
