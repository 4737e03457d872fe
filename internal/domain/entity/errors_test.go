package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage_WrappedSentinels(t *testing.T) {
	cases := map[error]string{
		ErrUpstreamConnection: "erro de conexão com a IA",
		ErrUpstreamEmpty:      "resposta vazia da IA",
		ErrUpstreamMalformed:  "resposta inválida da IA",
		ErrQuestionRequired:   "pergunta obrigatória",
		ErrQuizNoJSON:         "A IA não retornou um JSON válido",
	}

	for sentinel, want := range cases {
		wrapped := fmt.Errorf("ask: %w", sentinel)
		assert.Equal(t, want, UserMessage(wrapped))
	}
}

func TestUserMessage_QuizParseErrorKeepsCause(t *testing.T) {
	err := fmt.Errorf("quiz: %w", &QuizParseError{Err: errors.New("unexpected EOF")})

	assert.True(t, errors.Is(err, ErrQuizInvalidJSON))
	assert.Equal(t, "JSON inválido retornado pela IA: unexpected EOF", UserMessage(err))
}

func TestUserMessage_Unknown(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "erro interno", UserMessage(errors.New("boom")))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(fmt.Errorf("x: %w", ErrQuestionTooLong)))
	assert.False(t, IsClientError(ErrUpstreamEmpty))
}

func TestAlexaRequest_SlotValue(t *testing.T) {
	req := AlexaRequest{Request: AlexaInner{
		Type: AlexaIntentRequest,
		Intent: &AlexaIntent{
			Name:  AlexaAskIntent,
			Slots: map[string]AlexaSlot{"pergunta": {Name: "pergunta", Value: "qual a capital?"}},
		},
	}}

	assert.Equal(t, "qual a capital?", req.SlotValue(AlexaQuestionSlot))
	assert.Equal(t, "", req.SlotValue("outro"))
	assert.Equal(t, "", AlexaRequest{}.SlotValue(AlexaQuestionSlot))
}
