package entity

const (
	AlexaLaunchRequest       = "LaunchRequest"
	AlexaIntentRequest       = "IntentRequest"
	AlexaSessionEndedRequest = "SessionEndedRequest"

	AlexaAskIntent    = "PerguntarIAIntent"
	AlexaQuestionSlot = "pergunta"

	AlexaSpeechPlainText = "PlainText"
	AlexaResponseVersion = "1.0"
)

type AlexaRequest struct {
	Version string        `json:"version"`
	Session *AlexaSession `json:"session,omitempty"`
	Request AlexaInner    `json:"request"`
}

type AlexaSession struct {
	New       bool   `json:"new"`
	SessionID string `json:"sessionId"`
}

type AlexaInner struct {
	Type      string       `json:"type"`
	RequestID string       `json:"requestId"`
	Timestamp string       `json:"timestamp"`
	Locale    string       `json:"locale"`
	Intent    *AlexaIntent `json:"intent,omitempty"`
}

type AlexaIntent struct {
	Name  string               `json:"name"`
	Slots map[string]AlexaSlot `json:"slots,omitempty"`
}

type AlexaSlot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SlotValue returns the value of the named slot, or "" when the request
// carries no intent or no such slot.
func (r AlexaRequest) SlotValue(name string) string {
	if r.Request.Intent == nil {
		return ""
	}
	return r.Request.Intent.Slots[name].Value
}

type AlexaResponse struct {
	Version  string            `json:"version"`
	Response AlexaResponseBody `json:"response"`
}

type AlexaResponseBody struct {
	OutputSpeech     AlexaOutputSpeech `json:"outputSpeech"`
	ShouldEndSession bool              `json:"shouldEndSession"`
}

type AlexaOutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewAlexaSpeech builds a plain-text response that closes the session.
func NewAlexaSpeech(text string) AlexaResponse {
	return AlexaResponse{
		Version: AlexaResponseVersion,
		Response: AlexaResponseBody{
			OutputSpeech: AlexaOutputSpeech{
				Type: AlexaSpeechPlainText,
				Text: text,
			},
			ShouldEndSession: true,
		},
	}
}
