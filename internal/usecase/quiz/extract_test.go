package quiz

import (
	"errors"
	"testing"

	"ia-server/internal/domain/entity"
)

func TestExtractJSONObject_Bare(t *testing.T) {
	reply := `{"pergunta":"2+2?","alternativas":["3","4","5","6"],"correta":"4"}`

	got, err := ExtractJSONObject(reply)
	if err != nil {
		t.Fatalf("ExtractJSONObject failed: %v", err)
	}

	if string(got) != reply {
		t.Errorf("expected span verbatim, got %s", got)
	}
}

func TestExtractJSONObject_WithTextAround(t *testing.T) {
	reply := "Claro! Aqui está:\n```json\n{\"pergunta\": \"Cor do céu?\", \"alternativas\": [\"azul\", \"verde\"], \"correta\": \"azul\"}\n```\nBoa sorte!"

	got, err := ExtractJSONObject(reply)
	if err != nil {
		t.Fatalf("ExtractJSONObject failed: %v", err)
	}

	want := `{"pergunta": "Cor do céu?", "alternativas": ["azul", "verde"], "correta": "azul"}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestExtractJSONObject_NoBraces(t *testing.T) {
	_, err := ExtractJSONObject("Desculpe, não posso ajudar com isso.")

	if !errors.Is(err, entity.ErrQuizNoJSON) {
		t.Errorf("expected ErrQuizNoJSON, got %v", err)
	}
}

func TestExtractJSONObject_ReversedBraces(t *testing.T) {
	_, err := ExtractJSONObject("} nada aqui {")

	if !errors.Is(err, entity.ErrQuizNoJSON) {
		t.Errorf("expected ErrQuizNoJSON, got %v", err)
	}
}

func TestExtractJSONObject_BrokenSpan(t *testing.T) {
	_, err := ExtractJSONObject(`{"pergunta": "faltou fechar aspas}`)

	if !errors.Is(err, entity.ErrQuizInvalidJSON) {
		t.Fatalf("expected ErrQuizInvalidJSON, got %v", err)
	}

	var parseErr *entity.QuizParseError
	if !errors.As(err, &parseErr) || parseErr.Err == nil {
		t.Error("expected the decoder error to be kept")
	}
}
