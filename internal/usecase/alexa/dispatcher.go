package alexa

import (
	"context"
	"strings"

	"ia-server/internal/application/port/input"
	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"
)

var _ input.AlexaDispatcher = (*Dispatcher)(nil)

const (
	WelcomeSpeech         = "Olá! Pode me fazer uma pergunta."
	FallbackSpeech        = "Desculpe, não entendi."
	MissingQuestionSpeech = "Não entendi a sua pergunta."
	ErrorSpeechPrefix     = "Desculpe, ocorreu um erro ao consultar a IA: "
)

// Dispatcher answers Alexa skill requests. Every response ends the session.
type Dispatcher struct {
	answerer input.QuestionAnswerer
	speech   output.SpeechSanitizer
	logger   output.LoggerPort
	profile  entity.RouteProfile
}

func New(
	answerer input.QuestionAnswerer,
	speech output.SpeechSanitizer,
	logger output.LoggerPort,
	profile entity.RouteProfile,
) *Dispatcher {
	return &Dispatcher{
		answerer: answerer,
		speech:   speech,
		logger:   logger.WithField("component", "alexa"),
		profile:  profile,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req entity.AlexaRequest) entity.AlexaResponse {
	switch req.Request.Type {
	case entity.AlexaLaunchRequest:
		return entity.NewAlexaSpeech(WelcomeSpeech)
	case entity.AlexaIntentRequest:
		if req.Request.Intent != nil && req.Request.Intent.Name == entity.AlexaAskIntent {
			return d.ask(ctx, req)
		}
	}

	intent := ""
	if req.Request.Intent != nil {
		intent = req.Request.Intent.Name
	}
	d.logger.Debug("Unhandled Alexa request", "type", req.Request.Type, "intent", intent)
	return entity.NewAlexaSpeech(FallbackSpeech)
}

func (d *Dispatcher) ask(ctx context.Context, req entity.AlexaRequest) entity.AlexaResponse {
	question := strings.TrimSpace(req.SlotValue(entity.AlexaQuestionSlot))

	res, err := d.answerer.Ask(ctx, d.profile, question)
	if err != nil {
		if entity.IsClientError(err) {
			return entity.NewAlexaSpeech(MissingQuestionSpeech)
		}
		d.logger.Warn("Answering Alexa intent failed", "requestId", req.Request.RequestID, "error", err)
		return entity.NewAlexaSpeech(ErrorSpeechPrefix + entity.UserMessage(err))
	}

	text := d.speech.PlainText(res.Answer)
	if text == "" {
		return entity.NewAlexaSpeech(ErrorSpeechPrefix + entity.UserMessage(entity.ErrUpstreamEmpty))
	}
	return entity.NewAlexaSpeech(text)
}
