package store

import (
	"context"
	"fmt"

	"github.com/oaz/profiler/ent"
	"github.com/oaz/profiler/ent/llmrequestevent"
	"github.com/oaz/profiler/ent/responseevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetItemType(data.ItemType).
		SetCompetency(data.Competency).
		SetRawAnswer(data.RawAnswer).
		SetGradedScore(data.GradedScore).
		SetLatencyMs(data.LatencyMs).
		SetFlags(data.Flags).
		SetThetaAfter(data.ThetaAfter).
		SetCiAfter(data.CIAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append response event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	create := r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)
	if data.ErrorMessage != "" {
		create = create.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ResponsesBySession(ctx context.Context, sessionID string) ([]ResponseEvent, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query response events: %w", err)
	}

	events := make([]ResponseEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, ResponseEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ResponseEventData: ResponseEventData{
				SessionID:   row.SessionID,
				ItemID:      row.ItemID,
				ItemType:    row.ItemType,
				Competency:  row.Competency,
				RawAnswer:   row.RawAnswer,
				GradedScore: row.GradedScore,
				LatencyMs:   row.LatencyMs,
				Flags:       row.Flags,
				ThetaAfter:  row.ThetaAfter,
				CIAfter:     row.CiAfter,
			},
		})
	}
	return events, nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	events := make([]LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, LLMRequestEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return events, nil
}
