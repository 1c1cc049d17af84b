package profile

import (
	"time"

	"github.com/oaz/profiler/internal/competency"
)

// CompetencyResult is the sealed per-competency outcome inside a Snapshot.
type CompetencyResult struct {
	Competency    competency.Competency `json:"competency"`
	Theta         float64               `json:"theta"`
	Score         float64               `json:"score"`
	Level         competency.Level      `json:"level"`
	CI            float64               `json:"ci"`
	ItemsAnswered int                   `json:"items_answered"`
}

// Snapshot is the immutable, finalized proficiency record for a completed
// session. It is created exactly once at finalization; downstream
// consumers read it and never the live profile.
type Snapshot struct {
	SessionID    string             `json:"session_id"`
	TakenAt      time.Time          `json:"taken_at"`
	GlobalScore  float64            `json:"global_score"`
	GlobalLevel  competency.Level   `json:"global_level"`
	Competencies []CompetencyResult `json:"competencies"`
}

// Seal captures the profile into a new Snapshot. Competencies appear in
// declaration order.
func Seal(sessionID string, p *Profile, takenAt time.Time) *Snapshot {
	snap := &Snapshot{
		SessionID:   sessionID,
		TakenAt:     takenAt,
		GlobalScore: p.GlobalScore(),
		GlobalLevel: p.GlobalLevel(),
	}
	for _, s := range p.States() {
		snap.Competencies = append(snap.Competencies, CompetencyResult{
			Competency:    s.Competency,
			Theta:         s.Theta,
			Score:         s.Score(),
			Level:         s.Level(),
			CI:            s.CI,
			ItemsAnswered: s.ItemsAnswered,
		})
	}
	return snap
}
