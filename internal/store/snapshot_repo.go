package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oaz/profiler/ent"
	"github.com/oaz/profiler/ent/proficiencysnapshot"
	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *profile.Snapshot) error {
	compMap, err := competenciesToMap(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot competencies: %w", err)
	}

	_, err = r.client.ProficiencySnapshot.Create().
		SetSessionID(snap.SessionID).
		SetTakenAt(snap.TakenAt).
		SetGlobalScore(snap.GlobalScore).
		SetGlobalLevel(string(snap.GlobalLevel)).
		SetCompetencies(compMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot for session %s: %w", snap.SessionID, err)
	}
	return nil
}

func (r *snapshotRepo) BySession(ctx context.Context, sessionID string) (*profile.Snapshot, error) {
	s, err := r.client.ProficiencySnapshot.Query().
		Where(proficiencysnapshot.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot for session %s: %w", sessionID, err)
	}
	return entSnapshotToSnapshot(s)
}

func (r *snapshotRepo) Latest(ctx context.Context) (*profile.Snapshot, error) {
	s, err := r.client.ProficiencySnapshot.Query().
		Order(ent.Desc(proficiencysnapshot.FieldTakenAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToSnapshot(s)
}

// competenciesToMap converts the per-competency results to a
// map[string]any for ent JSON storage.
func competenciesToMap(snap *profile.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(struct {
		Results []profile.CompetencyResult `json:"results"`
	}{snap.Competencies})
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent row back to a profile.Snapshot.
func entSnapshotToSnapshot(s *ent.ProficiencySnapshot) (*profile.Snapshot, error) {
	b, err := json.Marshal(s.Competencies)
	if err != nil {
		return nil, fmt.Errorf("marshal ent competencies: %w", err)
	}
	var wrapper struct {
		Results []profile.CompetencyResult `json:"results"`
	}
	if err := json.Unmarshal(b, &wrapper); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot competencies: %w", err)
	}
	return &profile.Snapshot{
		SessionID:    s.SessionID,
		TakenAt:      s.TakenAt,
		GlobalScore:  s.GlobalScore,
		GlobalLevel:  competency.Level(s.GlobalLevel),
		Competencies: wrapper.Results,
	}, nil
}
