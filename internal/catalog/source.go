package catalog

import (
	"context"
	"sort"

	"github.com/oaz/profiler/internal/competency"
)

// Source is the read-only query surface over available items.
// An empty result is a legal response, not an error.
type Source interface {
	// EligibleItems returns items for the given competency (all
	// competencies when comp is empty), skipping excluded IDs.
	EligibleItems(ctx context.Context, comp competency.Competency, exclude map[string]bool) ([]Item, error)
}

// MemorySource serves items from an in-memory bank, ordered by ID so that
// downstream selection is reproducible.
type MemorySource struct {
	items []Item
}

// NewMemorySource creates a MemorySource over a copy of items.
func NewMemorySource(items []Item) *MemorySource {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &MemorySource{items: sorted}
}

func (s *MemorySource) EligibleItems(_ context.Context, comp competency.Competency, exclude map[string]bool) ([]Item, error) {
	var out []Item
	for _, it := range s.items {
		if comp != "" && it.Competency != comp {
			continue
		}
		if exclude[it.ID] {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Len returns the number of items in the bank.
func (s *MemorySource) Len() int {
	return len(s.items)
}
