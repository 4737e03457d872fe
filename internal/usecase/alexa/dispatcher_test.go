package alexa

import (
	"context"
	"testing"
	"time"

	"ia-server/internal/application/port/input"
	"ia-server/internal/domain/entity"
	"ia-server/internal/infrastructure/logger"
	"ia-server/internal/infrastructure/textclean"
	"ia-server/internal/usecase/ask"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnswerer struct {
	answer    string
	err       error
	questions []string
	profiles  []entity.RouteProfile
}

func (f *fakeAnswerer) Ask(ctx context.Context, profile entity.RouteProfile, question string) (*input.AskResult, error) {
	f.questions = append(f.questions, question)
	f.profiles = append(f.profiles, profile)
	if err := ask.ValidateQuestion(question); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return &input.AskResult{Answer: f.answer, Duration: time.Millisecond}, nil
}

var alexaProfile = entity.RouteProfile{Name: entity.RouteAlexa, Prompt: entity.PromptShort, Record: true}

func newDispatcher(a *fakeAnswerer) *Dispatcher {
	return New(a, textclean.NewSpeechCleaner(nil), logger.Nop(), alexaProfile)
}

func intentRequest(name, question string) entity.AlexaRequest {
	slots := map[string]entity.AlexaSlot{}
	if question != "" {
		slots[entity.AlexaQuestionSlot] = entity.AlexaSlot{Name: entity.AlexaQuestionSlot, Value: question}
	}
	return entity.AlexaRequest{
		Version: "1.0",
		Request: entity.AlexaInner{
			Type:   entity.AlexaIntentRequest,
			Intent: &entity.AlexaIntent{Name: name, Slots: slots},
		},
	}
}

func speech(t *testing.T, resp entity.AlexaResponse) string {
	t.Helper()
	assert.Equal(t, entity.AlexaResponseVersion, resp.Version)
	assert.Equal(t, entity.AlexaSpeechPlainText, resp.Response.OutputSpeech.Type)
	assert.True(t, resp.Response.ShouldEndSession)
	return resp.Response.OutputSpeech.Text
}

func TestDispatch_Launch(t *testing.T) {
	a := &fakeAnswerer{}
	d := newDispatcher(a)

	resp := d.Dispatch(context.Background(), entity.AlexaRequest{Request: entity.AlexaInner{Type: entity.AlexaLaunchRequest}})

	assert.Equal(t, WelcomeSpeech, speech(t, resp))
	assert.Empty(t, a.questions)
}

func TestDispatch_AskIntent(t *testing.T) {
	a := &fakeAnswerer{answer: "**Brasília** é a capital."}
	d := newDispatcher(a)

	resp := d.Dispatch(context.Background(), intentRequest(entity.AlexaAskIntent, "qual a capital do Brasil"))

	assert.Equal(t, "Brasília é a capital.", speech(t, resp))
	require.Len(t, a.questions, 1)
	assert.Equal(t, "qual a capital do Brasil", a.questions[0])
	assert.Equal(t, alexaProfile, a.profiles[0])
}

func TestDispatch_AskIntentWithoutSlot(t *testing.T) {
	a := &fakeAnswerer{answer: "x"}
	d := newDispatcher(a)

	resp := d.Dispatch(context.Background(), intentRequest(entity.AlexaAskIntent, ""))

	assert.Equal(t, MissingQuestionSpeech, speech(t, resp))
}

func TestDispatch_AskIntentUpstreamError(t *testing.T) {
	a := &fakeAnswerer{err: entity.ErrUpstreamConnection}
	d := newDispatcher(a)

	resp := d.Dispatch(context.Background(), intentRequest(entity.AlexaAskIntent, "oi"))

	assert.Equal(t, ErrorSpeechPrefix+"erro de conexão com a IA", speech(t, resp))
}

func TestDispatch_OtherShapes(t *testing.T) {
	a := &fakeAnswerer{}
	d := newDispatcher(a)

	cases := []entity.AlexaRequest{
		intentRequest("AMAZON.HelpIntent", ""),
		{Request: entity.AlexaInner{Type: entity.AlexaIntentRequest}},
		{Request: entity.AlexaInner{Type: entity.AlexaSessionEndedRequest}},
		{},
	}
	for _, req := range cases {
		assert.Equal(t, FallbackSpeech, speech(t, d.Dispatch(context.Background(), req)))
	}
	assert.Empty(t, a.questions)
}
