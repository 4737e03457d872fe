package entity

type QuizQuestion struct {
	Question     string   `json:"pergunta"`
	Alternatives []string `json:"alternativas"`
	Correct      string   `json:"correta"`
}

// QuizResult keeps the object exactly as the model produced it next to a
// best-effort typed view of it.
type QuizResult struct {
	Raw      []byte
	Question QuizQuestion
}
