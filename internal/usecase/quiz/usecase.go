package quiz

import (
	"context"
	"fmt"
	"time"

	"ia-server/internal/application/port/input"
	"ia-server/internal/application/port/output"
	"ia-server/internal/domain/entity"

	"github.com/segmentio/encoding/json"
)

var _ input.QuizGenerator = (*UseCase)(nil)

const quizTemperature = 0.9

type UseCase struct {
	llm      output.LLMPort
	prompts  output.PromptPort
	activity output.ActivityLog
	logger   output.LoggerPort
	profile  entity.RouteProfile
}

func New(
	llm output.LLMPort,
	prompts output.PromptPort,
	activity output.ActivityLog,
	logger output.LoggerPort,
	profile entity.RouteProfile,
) *UseCase {
	return &UseCase{
		llm:      llm,
		prompts:  prompts,
		activity: activity,
		logger:   logger.WithField("component", "quiz"),
		profile:  profile,
	}
}

func (uc *UseCase) Generate(ctx context.Context, topic string) (*entity.QuizResult, error) {
	prompt, err := uc.prompts.Quiz(topic)
	if err != nil {
		return nil, fmt.Errorf("build quiz prompt: %w", err)
	}

	start := time.Now()
	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages:    []entity.Message{{Role: entity.RoleUser, Content: prompt}},
		Temperature: quizTemperature,
	})
	elapsed := time.Since(start)
	if err != nil {
		uc.logger.Error("Quiz upstream call failed", "error", err, "durationMs", elapsed.Milliseconds())
		uc.record(topic, entity.UserMessage(err), elapsed, true)
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	raw, err := ExtractJSONObject(resp.Message.Content)
	if err != nil {
		uc.logger.Warn("Quiz reply had no usable JSON", "error", err, "replyLen", len(resp.Message.Content))
		uc.record(topic, entity.UserMessage(err), elapsed, true)
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	result := &entity.QuizResult{Raw: raw}
	if err := json.Unmarshal(raw, &result.Question); err != nil {
		uc.logger.Debug("Quiz object does not match the expected shape", "error", err)
	}

	uc.logger.Info("Quiz generated",
		"alternatives", len(result.Question.Alternatives),
		"durationMs", elapsed.Milliseconds(),
	)
	uc.record(topic, string(raw), elapsed, false)

	return result, nil
}

func (uc *UseCase) record(topic, answer string, elapsed time.Duration, failed bool) {
	if !uc.profile.Record || uc.activity == nil {
		return
	}
	question := "[quiz]"
	if topic != "" {
		question += " " + topic
	}
	uc.activity.Record(entity.ActivityEntry{
		Route:      uc.profile.Name,
		Question:   question,
		Answer:     answer,
		DurationMs: elapsed.Milliseconds(),
		Failed:     failed,
	})
}
