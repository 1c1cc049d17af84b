package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oaz/profiler/internal/assessment"
	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/grader"
	"github.com/oaz/profiler/internal/recommend"
)

// RunInteractive walks one full assessment session on a line-oriented
// terminal: calibration first, then items until the engine stops, then
// the proficiency report and learning plan.
func (a *App) RunInteractive(ctx context.Context, userRef string, mode assessment.Mode, in io.Reader, out io.Writer) error {
	start, err := a.Engine.StartSession(ctx, userRef, mode)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	r := bufio.NewReader(in)
	item := start.Item
	number := 0

	for {
		printItem(out, item, number)
		answer, err := readAnswer(r, out, item)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return a.Engine.Abandon(ctx, start.SessionID)
			}
			return err
		}

		res, err := a.Engine.SubmitResponse(ctx, start.SessionID, item.ID, answer)
		if err != nil {
			if errors.Is(err, grader.ErrInvalidAnswer) {
				fmt.Fprintln(out, "That is not one of the choices. Try again.")
				continue
			}
			return err
		}

		if res.Result != nil {
			printResult(out, res.Result)
			return nil
		}
		item = *res.NextItem
		number++
	}
}

func printItem(out io.Writer, item catalog.Item, number int) {
	fmt.Fprintln(out)
	if number == 0 {
		fmt.Fprintln(out, "Before we start, one quick question.")
	} else {
		label := competency.DisplayName(item.Competency)
		fmt.Fprintf(out, "Question %d  [%s]\n", number, label)
	}
	fmt.Fprintln(out, item.Stem)
	for i, c := range item.Choices {
		fmt.Fprintf(out, "  %d) %s\n", i+1, c)
	}
}

// readAnswer accepts either a choice number or free text. Objective
// items re-prompt on a number out of range.
func readAnswer(r *bufio.Reader, out io.Writer, item catalog.Item) (string, error) {
	for {
		fmt.Fprint(out, "> ")
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		line = strings.TrimSpace(line)

		if len(item.Choices) > 0 {
			if n, convErr := strconv.Atoi(line); convErr == nil {
				if n >= 1 && n <= len(item.Choices) {
					return item.Choices[n-1], nil
				}
				fmt.Fprintf(out, "Enter a number between 1 and %d.\n", len(item.Choices))
				continue
			}
		}
		return line, nil
	}
}

func printResult(out io.Writer, res *assessment.SessionResult) {
	snap := res.Snapshot
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Session finished (%s).\n", res.Reason)
	fmt.Fprintf(out, "Overall: %.0f / 100  (%s)\n\n", snap.GlobalScore, snap.GlobalLevel)

	fmt.Fprintf(out, "%-28s  %-6s  %-5s  %s\n", "Competency", "Score", "Level", "±CI")
	fmt.Fprintln(out, strings.Repeat("─", 52))
	for _, c := range snap.Competencies {
		fmt.Fprintf(out, "%-28s  %-6.0f  %-5s  %.1f\n",
			competency.DisplayName(c.Competency), c.Score, c.Level, c.CI)
	}

	printRecommendation(out, res.Recommendation)
}

func printRecommendation(out io.Writer, rec *recommend.Recommendation) {
	if rec == nil {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, rec.Summary)
	for _, t := range rec.Tracks {
		fmt.Fprintf(out, "  [%s] %s: %s → %s\n",
			t.Priority, t.CompetencyName, t.CurrentLevel, t.TargetLevel)
	}
}
