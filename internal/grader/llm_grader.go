package grader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/llm"
)

// LLMConfig holds configuration for the model-backed subjective grader.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMConfig returns sensible defaults. Temperature stays 0 so that
// regrading the same answer is as reproducible as the backend allows.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   512,
		Temperature: 0,
	}
}

// LLMGrader delegates rubric grading to a model provider.
type LLMGrader struct {
	provider llm.Provider
	cfg      LLMConfig
}

// NewLLMGrader creates a model-backed subjective grader.
func NewLLMGrader(provider llm.Provider, cfg LLMConfig) *LLMGrader {
	return &LLMGrader{provider: provider, cfg: cfg}
}

// GradeSchema constrains the grading response shape.
var GradeSchema = &llm.Schema{
	Name:        "rubric-grade",
	Description: "Grade of a free-text answer against a rubric",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "How well the answer satisfies the rubric, 0 to 1",
			},
			"flags": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"enum": []any{"tooShort", "offTopic"},
				},
				"description": "Quality issues observed in the answer",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences of feedback for the respondent",
			},
		},
		"required": []any{"score", "flags"},
	},
}

const gradeSystemPrompt = `You grade free-text answers in a professional AI-proficiency assessment.
Score strictly against the rubric. Partial credit is expected: an answer
that addresses some rubric points scores between 0 and 1. Do not reward
length or confident tone. Flag answers that are off-topic.`

// gradeOutput is the raw model response.
type gradeOutput struct {
	Score    float64  `json:"score"`
	Flags    []string `json:"flags"`
	Feedback string   `json:"feedback"`
}

// Grade asks the model to grade the answer against the item's rubric.
func (g *LLMGrader) Grade(ctx context.Context, item catalog.Item, answer string) (Result, error) {
	ctx = llm.WithPurpose(ctx, "rubric-grading")

	userMsg := fmt.Sprintf(
		"Question:\n%s\n\nRubric:\n%s\n\nAnswer:\n%s",
		item.Stem, item.Rubric, answer,
	)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return Result{}, fmt.Errorf("model grading failed: %w", err)
	}

	var raw gradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Result{}, fmt.Errorf("parse grading response: %w", err)
	}

	res := Result{Score: raw.Score, Feedback: raw.Feedback}
	for _, f := range raw.Flags {
		switch f {
		case "tooShort":
			res.Flags = append(res.Flags, FlagTooShort)
		case "offTopic":
			res.Flags = append(res.Flags, FlagOffTopic)
		}
	}
	return res, nil
}
