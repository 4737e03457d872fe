package entity

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamConnection = errors.New("upstream connection failed")
	ErrUpstreamEmpty      = errors.New("upstream returned an empty answer")
	ErrUpstreamMalformed  = errors.New("upstream returned a malformed answer")
	ErrUpstreamRejected   = errors.New("upstream rejected the request")

	ErrQuestionRequired = errors.New("question is required")
	ErrQuestionTooLong  = errors.New("question is too long")

	ErrQuizNoJSON      = errors.New("no JSON object in model reply")
	ErrQuizInvalidJSON = errors.New("model reply JSON could not be parsed")
)

// QuizParseError carries the decoder error for a located but unparseable
// JSON span. It matches ErrQuizInvalidJSON under errors.Is.
type QuizParseError struct {
	Err error
}

func (e *QuizParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrQuizInvalidJSON, e.Err)
}

func (e *QuizParseError) Unwrap() error {
	return e.Err
}

func (e *QuizParseError) Is(target error) bool {
	return target == ErrQuizInvalidJSON
}

var userMessages = []struct {
	err error
	msg string
}{
	{ErrUpstreamConnection, "erro de conexão com a IA"},
	{ErrUpstreamEmpty, "resposta vazia da IA"},
	{ErrUpstreamMalformed, "resposta inválida da IA"},
	{ErrUpstreamRejected, "a IA recusou a requisição"},
	{ErrQuestionRequired, "pergunta obrigatória"},
	{ErrQuestionTooLong, "pergunta muito longa"},
	{ErrQuizNoJSON, "A IA não retornou um JSON válido"},
}

// UserMessage maps an error to the sentence shown to callers.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	var parseErr *QuizParseError
	if errors.As(err, &parseErr) {
		return "JSON inválido retornado pela IA: " + parseErr.Err.Error()
	}
	return "erro interno"
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrQuestionRequired) || errors.Is(err, ErrQuestionTooLong)
}
