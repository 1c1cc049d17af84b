package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/oaz/profiler/internal/llm"
)

func TestLLMGrader_ParsesStructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.75, "flags": ["offTopic"], "feedback": "Drifts from the rubric."}`),
	})
	g := NewLLMGrader(mock, DefaultLLMConfig())

	res, err := g.Grade(context.Background(), openItem(), "A partially relevant answer.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0.75 {
		t.Errorf("score = %v, want 0.75", res.Score)
	}
	if !hasFlag(res.Flags, FlagOffTopic) {
		t.Errorf("flags = %v, want offTopic", res.Flags)
	}
	if res.Feedback == "" {
		t.Error("feedback lost")
	}
}

func TestLLMGrader_RequestCarriesRubric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.5, "flags": []}`),
	})
	g := NewLLMGrader(mock, DefaultLLMConfig())

	item := openItem()
	if _, err := g.Grade(context.Background(), item, "the answer text"); err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "rubric-grade" {
		t.Error("request missing the grading schema")
	}
	if req.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", req.Temperature)
	}
	body := req.Messages[0].Content
	if !strings.Contains(body, item.Rubric) || !strings.Contains(body, "the answer text") {
		t.Error("prompt missing rubric or answer")
	}
}

func TestLLMGrader_BackendErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	g := NewLLMGrader(mock, DefaultLLMConfig())

	if _, err := g.Grade(context.Background(), openItem(), "whatever"); err == nil {
		t.Fatal("backend error swallowed; the retry policy above needs it")
	}
}

func TestLLMGrader_UnknownFlagsDropped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.9, "flags": ["brilliant"]}`),
	})
	g := NewLLMGrader(mock, DefaultLLMConfig())

	res, err := g.Grade(context.Background(), openItem(), "A strong answer.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if len(res.Flags) != 0 {
		t.Errorf("unknown flag passed through: %v", res.Flags)
	}
}
