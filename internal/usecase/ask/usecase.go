package ask

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ia-server/internal/application/port/input"
	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

var _ input.QuestionAnswerer = (*UseCase)(nil)

const MaxQuestionLength = 4000

type UseCase struct {
	llm      output.LLMPort
	prompts  output.PromptPort
	activity output.ActivityLog
	logger   output.LoggerPort
	now      func() time.Time
}

func New(
	llm output.LLMPort,
	prompts output.PromptPort,
	activity output.ActivityLog,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		llm:      llm,
		prompts:  prompts,
		activity: activity,
		logger:   logger.WithField("component", "ask"),
		now:      time.Now,
	}
}

// ValidateQuestion rejects blank questions and ones over MaxQuestionLength
// characters. The question is expected to be trimmed already.
func ValidateQuestion(question string) error {
	if err := ozzo.Validate(question, ozzo.Required); err != nil {
		return entity.ErrQuestionRequired
	}
	if err := ozzo.Validate(question, ozzo.RuneLength(0, MaxQuestionLength)); err != nil {
		return fmt.Errorf("%w: %d characters", entity.ErrQuestionTooLong, utf8.RuneCountInString(question))
	}
	return nil
}

// Ask sends question upstream using the route's prompt template. Invalid
// input never reaches the upstream and is not recorded; upstream failures
// are recorded with the user-facing error as the answer.
func (uc *UseCase) Ask(ctx context.Context, profile entity.RouteProfile, question string) (*input.AskResult, error) {
	question = strings.TrimSpace(question)
	if err := ValidateQuestion(question); err != nil {
		return nil, err
	}

	prompt, err := uc.prompts.Question(profile.Prompt, question)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	start := uc.now()
	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: prompt}},
	})
	elapsed := uc.now().Sub(start)

	if err != nil {
		uc.logger.Error("Upstream call failed",
			"route", profile.Name,
			"durationMs", elapsed.Milliseconds(),
			"error", err,
		)
		uc.record(profile, question, entity.UserMessage(err), elapsed, true)
		return nil, fmt.Errorf("ask %s: %w", profile.Name, err)
	}

	uc.logger.Info("Question answered",
		"route", profile.Name,
		"durationMs", elapsed.Milliseconds(),
		"answerLen", len(resp.Message.Content),
	)
	uc.record(profile, question, resp.Message.Content, elapsed, false)

	return &input.AskResult{
		Answer:   resp.Message.Content,
		Duration: elapsed,
	}, nil
}

func (uc *UseCase) record(profile entity.RouteProfile, question, answer string, elapsed time.Duration, failed bool) {
	if !profile.Record || uc.activity == nil {
		return
	}
	uc.activity.Record(entity.ActivityEntry{
		Route:      profile.Name,
		Question:   question,
		Answer:     answer,
		DurationMs: elapsed.Milliseconds(),
		Failed:     failed,
	})
}
