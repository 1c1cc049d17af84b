package recommend

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
)

func snapshotWithScores(scores map[competency.Competency]float64) *profile.Snapshot {
	snap := &profile.Snapshot{
		SessionID: "sess-1",
		TakenAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	total := 0.0
	for _, c := range competency.All() {
		score, ok := scores[c]
		if !ok {
			score = 70
		}
		total += score
		snap.Competencies = append(snap.Competencies, profile.CompetencyResult{
			Competency: c,
			Score:      score,
			Level:      competency.LevelForScore(score),
			CI:         8,
		})
	}
	snap.GlobalScore = total / float64(len(competency.All()))
	snap.GlobalLevel = competency.LevelForScore(snap.GlobalScore)
	return snap
}

func TestGenerate_RankingAndPriorities(t *testing.T) {
	snap := snapshotWithScores(map[competency.Competency]float64{
		competency.DataRAG:      55,
		competency.Ethics:       30,
		competency.LLMOps:       42,
		competency.Fundamentals: 59.9,
	})
	rec := Generate(snap, DefaultConfig())

	wantOrder := []competency.Competency{
		competency.Ethics,
		competency.LLMOps,
		competency.DataRAG,
		competency.Fundamentals,
	}
	if len(rec.Tracks) != len(wantOrder) {
		t.Fatalf("got %d tracks, want %d", len(rec.Tracks), len(wantOrder))
	}
	for i, want := range wantOrder {
		if rec.Tracks[i].Competency != want {
			t.Errorf("track %d = %s, want %s", i, rec.Tracks[i].Competency, want)
		}
	}

	wantPriorities := []string{PriorityHigh, PriorityMedium, PriorityMedium, PriorityLow}
	for i, want := range wantPriorities {
		if rec.Tracks[i].Priority != want {
			t.Errorf("track %d priority = %s, want %s", i, rec.Tracks[i].Priority, want)
		}
	}
}

func TestGenerate_TargetLevels(t *testing.T) {
	snap := snapshotWithScores(map[competency.Competency]float64{
		competency.Ethics: 30, // N1
	})
	rec := Generate(snap, DefaultConfig())
	if len(rec.Tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(rec.Tracks))
	}
	tr := rec.Tracks[0]
	if tr.CurrentLevel != competency.LevelN1 || tr.TargetLevel != competency.LevelN2 {
		t.Errorf("levels %s -> %s, want N1 -> N2", tr.CurrentLevel, tr.TargetLevel)
	}
	if tr.CompetencyName != competency.DisplayName(competency.Ethics) {
		t.Errorf("CompetencyName = %q", tr.CompetencyName)
	}
}

func TestGenerate_TiesBrokenByDeclarationOrder(t *testing.T) {
	snap := snapshotWithScores(map[competency.Competency]float64{
		competency.CodeNoCode: 40,
		competency.DataRAG:    40,
		competency.Ethics:     40,
	})
	rec := Generate(snap, DefaultConfig())
	wantOrder := []competency.Competency{
		competency.DataRAG,
		competency.Ethics,
		competency.CodeNoCode,
	}
	for i, want := range wantOrder {
		if rec.Tracks[i].Competency != want {
			t.Errorf("track %d = %s, want %s (declaration order)", i, rec.Tracks[i].Competency, want)
		}
	}
}

func TestGenerate_ThresholdIsExclusive(t *testing.T) {
	snap := snapshotWithScores(map[competency.Competency]float64{
		competency.Ethics: 60,
	})
	rec := Generate(snap, DefaultConfig())
	if len(rec.Tracks) != 0 {
		t.Errorf("score exactly at threshold produced tracks: %+v", rec.Tracks)
	}
	if rec.Summary == "" {
		t.Error("no-gap plan has empty summary")
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	snap := snapshotWithScores(map[competency.Competency]float64{
		competency.Ethics: 25,
		competency.LLMOps: 45,
	})

	first, err := json.Marshal(Generate(snap, DefaultConfig()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Generate(snap, DefaultConfig()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two runs over the same snapshot differ")
	}
}
