package selector

import (
	"context"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/profile"
)

// FixedBlock serves items in a fixed, predeclared order, ignoring the
// profile entirely. This is the degenerate non-adaptive mode: the block
// is walked front to back and exhaustion ends the session.
type FixedBlock struct {
	source catalog.Source
	order  []string
}

// NewFixedBlock creates a fixed-block selector. order lists item IDs in
// presentation order; IDs missing from the source are skipped at
// selection time.
func NewFixedBlock(source catalog.Source, order []string) *FixedBlock {
	return &FixedBlock{source: source, order: append([]string{}, order...)}
}

// Next returns the first item in block order not yet presented.
func (s *FixedBlock) Next(ctx context.Context, _ *profile.Profile, hist History) (catalog.Item, error) {
	eligible, err := s.source.EligibleItems(ctx, "", hist.Asked)
	if err != nil {
		return catalog.Item{}, err
	}

	byID := make(map[string]catalog.Item, len(eligible))
	for _, it := range eligible {
		byID[it.ID] = it
	}

	for _, id := range s.order {
		if hist.Asked[id] {
			continue
		}
		if it, ok := byID[id]; ok {
			return it, nil
		}
	}
	return catalog.Item{}, ErrNoEligibleItems
}
