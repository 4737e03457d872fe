package output

type SpeechSanitizer interface {
	PlainText(answer string) string
}
