package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/oaz/profiler/internal/assessment"
)

func TestBuild_DefaultBank(t *testing.T) {
	a, err := Build(context.Background(), Options{Mode: assessment.ModeAdaptive})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer a.Close()

	if len(a.Bank) == 0 {
		t.Fatal("built-in bank is empty")
	}
	if a.Store() != nil {
		t.Error("store opened without a DB path")
	}
}

func TestRunInteractive_FullSession(t *testing.T) {
	a, err := Build(context.Background(), Options{Mode: assessment.ModeAdaptive})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer a.Close()

	// Always answer the first choice; free-text items take the line
	// verbatim. More lines than any session can consume.
	in := strings.NewReader(strings.Repeat("1\n", 60))
	var out bytes.Buffer

	if err := a.RunInteractive(context.Background(), "tester", assessment.ModeAdaptive, in, &out); err != nil {
		t.Fatalf("RunInteractive: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Session finished", "Overall:", "Competency"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunInteractive_EOFAbandons(t *testing.T) {
	a, err := Build(context.Background(), Options{Mode: assessment.ModeAdaptive})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer a.Close()

	var out bytes.Buffer
	if err := a.RunInteractive(context.Background(), "tester", assessment.ModeAdaptive, strings.NewReader(""), &out); err != nil {
		t.Fatalf("RunInteractive on closed input: %v", err)
	}
}
