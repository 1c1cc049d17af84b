package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
)

// Priority buckets for a learning track.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Track is a per-competency learning recommendation.
type Track struct {
	Competency     competency.Competency `json:"competency"`
	CompetencyName string                `json:"competencyName"`
	Score          float64               `json:"score"`
	CurrentLevel   competency.Level      `json:"currentLevel"`
	TargetLevel    competency.Level      `json:"targetLevel"`
	Priority       string                `json:"priority"`
}

// Recommendation is the full post-assessment learning plan.
type Recommendation struct {
	GlobalScore float64          `json:"globalScore"`
	GlobalLevel competency.Level `json:"globalLevel"`
	Tracks      []Track          `json:"tracks"`
	Summary     string           `json:"summary"`
}

// Config tunes plan generation.
type Config struct {
	// GapThreshold is the score below which a competency is treated
	// as a gap worth a dedicated track.
	GapThreshold float64
}

// DefaultConfig returns the production recommender settings.
func DefaultConfig() Config {
	return Config{GapThreshold: 60}
}

// Generate builds a learning plan from a sealed snapshot. The function
// is pure: the same snapshot always yields the same plan.
func Generate(snap *profile.Snapshot, cfg Config) *Recommendation {
	rec := &Recommendation{
		GlobalScore: snap.GlobalScore,
		GlobalLevel: snap.GlobalLevel,
	}

	gaps := make([]profile.CompetencyResult, 0, len(snap.Competencies))
	for _, res := range snap.Competencies {
		if res.Score < cfg.GapThreshold {
			gaps = append(gaps, res)
		}
	}

	// Weakest first. Stable sort keeps declaration order on equal
	// scores, so ties resolve deterministically.
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Score < gaps[j].Score
	})

	for rank, res := range gaps {
		rec.Tracks = append(rec.Tracks, Track{
			Competency:     res.Competency,
			CompetencyName: competency.DisplayName(res.Competency),
			Score:          res.Score,
			CurrentLevel:   res.Level,
			TargetLevel:    competency.NextLevel(res.Level),
			Priority:       priorityForRank(rank),
		})
	}

	rec.Summary = summarize(rec)
	return rec
}

func priorityForRank(rank int) string {
	switch {
	case rank == 0:
		return PriorityHigh
	case rank <= 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func summarize(rec *Recommendation) string {
	if len(rec.Tracks) == 0 {
		return fmt.Sprintf("Overall proficiency %s (%.0f). No significant gaps found; keep practicing at your current level.",
			rec.GlobalLevel, rec.GlobalScore)
	}
	names := make([]string, 0, len(rec.Tracks))
	for _, t := range rec.Tracks {
		names = append(names, t.CompetencyName)
	}
	return fmt.Sprintf("Overall proficiency %s (%.0f). Focus areas, weakest first: %s.",
		rec.GlobalLevel, rec.GlobalScore, strings.Join(names, ", "))
}
