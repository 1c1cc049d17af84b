package scoring

// Config holds the tunable constants of the IRT-lite scorer.
type Config struct {
	// LearningRate is the base step size for theta updates. The effective
	// step also scales with the item's discrimination.
	LearningRate float64

	// ThetaBound is the numeric safety range for theta. Updates are bounded
	// to [-ThetaBound, +ThetaBound] to prevent runaway on pathological
	// repeated extreme answers. Wider than the nominal -3..+3 scale.
	ThetaBound float64

	// InitialCI is the starting confidence interval half-width, in score
	// units.
	InitialCI float64

	// CIDecay is the multiplicative shrink applied to the CI on every
	// answer, regardless of correctness. Must be in (0, 1].
	CIDecay float64

	// CIFloor is the smallest CI the decay can reach.
	CIFloor float64

	// CalibrationWeight scales the shared theta offset seeded from the
	// calibration (P0) response.
	CalibrationWeight float64
}

// DefaultConfig returns the production scoring constants.
func DefaultConfig() Config {
	return Config{
		LearningRate:      0.3,
		ThetaBound:        6.0,
		InitialCI:         30.0,
		CIDecay:           0.85,
		CIFloor:           4.0,
		CalibrationWeight: 0.5,
	}
}
