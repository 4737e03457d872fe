package quiz

import (
	"strings"

	"ia-server/internal/domain/entity"

	"github.com/segmentio/encoding/json"
)

// ExtractJSONObject locates the span from the first '{' to the last '}' in
// a model reply and checks that it parses. The span is returned unchanged.
func ExtractJSONObject(reply string) ([]byte, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return nil, entity.ErrQuizNoJSON
	}

	span := []byte(reply[start : end+1])

	var probe map[string]any
	if err := json.Unmarshal(span, &probe); err != nil {
		return nil, &entity.QuizParseError{Err: err}
	}

	return span, nil
}
