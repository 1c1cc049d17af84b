package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRepo_CreateUpdateGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SessionRepo()

	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &SessionRecord{
		ID:        "sess-1",
		UserRef:   "tester",
		Status:    "initializing",
		Mode:      "adaptive",
		StartedAt: started,
	}))

	rec, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "tester", rec.UserRef)
	assert.Equal(t, "initializing", rec.Status)
	assert.Nil(t, rec.FinishedAt)

	finished := started.Add(7 * time.Minute)
	require.NoError(t, repo.UpdateProgress(ctx, "sess-1", "converged", 9, &finished))

	rec, err = repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "converged", rec.Status)
	assert.Equal(t, 9, rec.ItemsAnswered)
	require.NotNil(t, rec.FinishedAt)
	assert.True(t, rec.FinishedAt.Equal(finished))

	missing, err := repo.Get(ctx, "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepo_AppendAndReadBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for i, itemID := range []string{"q-1", "q-2"} {
		require.NoError(t, repo.AppendResponse(ctx, ResponseEventData{
			SessionID:   "sess-1",
			ItemID:      itemID,
			ItemType:    "multiple_choice",
			Competency:  "ai-ml-fundamentals",
			RawAnswer:   "Paris",
			GradedScore: float64(i),
			LatencyMs:   1200,
			Flags:       []string{"tooShort"},
			ThetaAfter:  0.4,
			CIAfter:     25.5,
		}))
	}
	require.NoError(t, repo.AppendResponse(ctx, ResponseEventData{
		SessionID:  "sess-2",
		ItemID:     "q-9",
		ItemType:   "open_ended",
		Competency: "ethics-and-compliance",
	}))

	events, err := repo.ResponsesBySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "q-1", events[0].ItemID)
	assert.Equal(t, "q-2", events[1].ItemID)
	assert.Less(t, events[0].Sequence, events[1].Sequence)
	assert.Equal(t, []string{"tooShort"}, events[0].Flags)
	assert.Equal(t, 25.5, events[0].CIAfter)
}

func TestEventRepo_LLMRequests(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model:        "mock",
		Purpose:      "rubric-grading",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    800,
		Success:      true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model:        "mock",
		Purpose:      "rubric-grading",
		LatencyMs:    30,
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	events, err := repo.RecentLLMRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.True(t, events[1].Success)
	assert.Equal(t, 120, events[1].InputTokens)

	one, err := repo.RecentLLMRequests(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.False(t, one[0].Success)
}

func TestSequence_GloballyOrderedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	require.NoError(t, repo.AppendResponse(ctx, ResponseEventData{
		SessionID: "sess-1", ItemID: "q-1", ItemType: "scenario", Competency: "data-and-rag",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model: "mock", Purpose: "rubric-grading", Success: true,
	}))
	require.NoError(t, repo.AppendResponse(ctx, ResponseEventData{
		SessionID: "sess-1", ItemID: "q-2", ItemType: "scenario", Competency: "data-and-rag",
	}))

	responses, err := repo.ResponsesBySession(ctx, "sess-1")
	require.NoError(t, err)
	llms, err := repo.RecentLLMRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	require.Len(t, llms, 1)

	// The model call interleaves between the two responses in the
	// global sequence.
	assert.Less(t, responses[0].Sequence, llms[0].Sequence)
	assert.Less(t, llms[0].Sequence, responses[1].Sequence)
}

func TestSnapshotRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	prof := profile.New(30)
	prof.State(competency.PromptEngineering).Theta = 1.5
	snap := profile.Seal("sess-1", prof, time.Date(2026, 3, 1, 9, 12, 0, 0, time.UTC))

	require.NoError(t, repo.Save(ctx, snap))

	got, err := repo.BySession(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap.GlobalScore, got.GlobalScore)
	assert.Equal(t, snap.GlobalLevel, got.GlobalLevel)
	require.Len(t, got.Competencies, len(competency.All()))
	assert.Equal(t, competency.PromptEngineering, got.Competencies[2].Competency)
	assert.Equal(t, 75.0, got.Competencies[2].Score)

	// Save is once per session.
	assert.Error(t, repo.Save(ctx, snap))

	missing, err := repo.BySession(ctx, "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSnapshotRepo_Latest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.SnapshotRepo()

	empty, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)

	older := profile.Seal("sess-old", profile.New(30), time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))
	newer := profile.Seal("sess-new", profile.New(30), time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sess-new", got.SessionID)
}
