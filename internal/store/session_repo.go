package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oaz/profiler/ent"
	"github.com/oaz/profiler/ent/assessmentsession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, rec *SessionRecord) error {
	_, err := r.client.AssessmentSession.Create().
		SetSessionID(rec.ID).
		SetUserRef(rec.UserRef).
		SetStatus(rec.Status).
		SetMode(rec.Mode).
		SetStartedAt(rec.StartedAt).
		SetItemsAnswered(rec.ItemsAnswered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session %s: %w", rec.ID, err)
	}
	return nil
}

func (r *sessionRepo) UpdateProgress(ctx context.Context, id, status string, itemsAnswered int, finishedAt *time.Time) error {
	upd := r.client.AssessmentSession.Update().
		Where(assessmentsession.SessionID(id)).
		SetStatus(status).
		SetItemsAnswered(itemsAnswered)
	if finishedAt != nil {
		upd = upd.SetFinishedAt(*finishedAt)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update session %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update session %s: no such session", id)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	s, err := r.client.AssessmentSession.Query().
		Where(assessmentsession.SessionID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session %s: %w", id, err)
	}
	return &SessionRecord{
		ID:            s.SessionID,
		UserRef:       s.UserRef,
		Status:        s.Status,
		Mode:          s.Mode,
		StartedAt:     s.StartedAt,
		FinishedAt:    s.FinishedAt,
		ItemsAnswered: s.ItemsAnswered,
	}, nil
}
