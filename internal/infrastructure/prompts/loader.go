package prompts

import (
	_ "embed"
)

//go:embed question_default.txt
var QuestionDefaultPrompt string

//go:embed question_short.txt
var QuestionShortPrompt string

//go:embed quiz.txt
var QuizPrompt string
