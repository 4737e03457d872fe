package textclean

import (
	"io"
	"strings"

	"ia-server/internal/application/port/output"

	"golang.org/x/net/html"
)

var _ output.SpeechSanitizer = (*SpeechCleaner)(nil)

type SpeechConfig struct {
	SkipTags      []string
	MarkdownMarks []string
	MaxOutputSize int
}

// DefaultSpeechConfig — Alexa caps PlainText speech at 8000 characters.
var DefaultSpeechConfig = SpeechConfig{
	SkipTags:      []string{"script", "style", "noscript", "svg", "iframe", "head"},
	MarkdownMarks: []string{"**", "__", "`", "#"},
	MaxOutputSize: 8000,
}

// SpeechCleaner turns a model answer into text a voice assistant can read
// aloud: markup is dropped, markdown emphasis is removed and whitespace is
// collapsed.
type SpeechCleaner struct {
	cfg  SpeechConfig
	skip map[string]bool
}

func NewSpeechCleaner(cfg *SpeechConfig) *SpeechCleaner {
	if cfg == nil {
		cfg = &DefaultSpeechConfig
	}
	skip := make(map[string]bool, len(cfg.SkipTags))
	for _, t := range cfg.SkipTags {
		skip[t] = true
	}
	return &SpeechCleaner{cfg: *cfg, skip: skip}
}

func (c *SpeechCleaner) PlainText(answer string) string {
	text := c.stripTags(answer)

	for _, mark := range c.cfg.MarkdownMarks {
		text = strings.ReplaceAll(text, mark, "")
	}

	text = strings.Join(strings.Fields(text), " ")
	return truncate(text, c.cfg.MaxOutputSize)
}

func (c *SpeechCleaner) stripTags(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return raw
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	skipDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return sb.String()
			}
			// Tokenizer gave up: fall back to the raw input.
			return raw
		case html.StartTagToken:
			name, _ := z.TagName()
			if c.skip[string(name)] {
				skipDepth++
			}
			sb.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if c.skip[string(name)] && skipDepth > 0 {
				skipDepth--
			}
			sb.WriteByte(' ')
		case html.SelfClosingTagToken:
			sb.WriteByte(' ')
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
