package entity

import "time"

const (
	DefaultActivityCapacity = 100
	ActivityTimeLayout      = "02/01/2006 15:04:05"
)

// ActivityEntry is one question/answer exchange shown on the dashboard.
// Entries are immutable once recorded.
type ActivityEntry struct {
	ID         string    `json:"id"`
	Route      RouteName `json:"rota"`
	Question   string    `json:"pergunta"`
	Answer     string    `json:"resposta"`
	DurationMs int64     `json:"duracaoMs"`
	Timestamp  time.Time `json:"timestamp"`
	Failed     bool      `json:"falhou"`
}

func (e ActivityEntry) FormattedTimestamp() string {
	return e.Timestamp.Format(ActivityTimeLayout)
}
