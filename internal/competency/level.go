package competency

// Level is a proficiency band over the 0-100 score scale.
type Level string

const (
	LevelN0 Level = "N0"
	LevelN1 Level = "N1"
	LevelN2 Level = "N2"
	LevelN3 Level = "N3"
	LevelN4 Level = "N4"
	LevelN5 Level = "N5"
)

// Levels returns all levels from lowest to highest.
func Levels() []Level {
	return []Level{LevelN0, LevelN1, LevelN2, LevelN3, LevelN4, LevelN5}
}

// LevelForScore maps a 0-100 score to its band. Bands are lower-closed and
// exhaustive: N0 [0,20) N1 [20,40) N2 [40,60) N3 [60,75) N4 [75,88)
// N5 [88,100]. Scores outside [0,100] are clamped into the scale.
func LevelForScore(score float64) Level {
	switch {
	case score < 20:
		return LevelN0
	case score < 40:
		return LevelN1
	case score < 60:
		return LevelN2
	case score < 75:
		return LevelN3
	case score < 88:
		return LevelN4
	default:
		return LevelN5
	}
}

// NextLevel returns the level one band above l, capped at N5.
func NextLevel(l Level) Level {
	levels := Levels()
	for i, cur := range levels {
		if cur == l {
			if i == len(levels)-1 {
				return cur
			}
			return levels[i+1]
		}
	}
	return LevelN1
}

// LevelDescription returns a short summary sentence for a global level.
func LevelDescription(l Level) string {
	switch l {
	case LevelN0:
		return "At the start of the AI journey. Focus on fundamentals."
	case LevelN1:
		return "Good start. Keep exploring core tools and concepts."
	case LevelN2:
		return "Intermediate knowledge. Time to deepen practical skills."
	case LevelN3:
		return "Solid proficiency. Pursue specialization in strategic areas."
	case LevelN4:
		return "Advanced expertise. Share knowledge and lead initiatives."
	case LevelN5:
		return "Expert. Ready to mentor others."
	default:
		return "Keep learning."
	}
}
