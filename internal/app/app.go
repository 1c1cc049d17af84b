package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/oaz/profiler/internal/assessment"
	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/convergence"
	"github.com/oaz/profiler/internal/grader"
	"github.com/oaz/profiler/internal/llm"
	"github.com/oaz/profiler/internal/recommend"
	"github.com/oaz/profiler/internal/scoring"
	"github.com/oaz/profiler/internal/selector"
	"github.com/oaz/profiler/internal/store"
)

// Options configures a fully wired assessment app.
type Options struct {
	// BankPath is the YAML item bank to load.
	BankPath string

	// DBPath is the SQLite file. Empty disables persistence.
	DBPath string

	// Mode selects the item-selection strategy.
	Mode assessment.Mode

	// FixedOrder is the item order for fixed-block mode. Empty means
	// bank order (sorted by id).
	FixedOrder []string

	// UseLLM delegates subjective grading to the configured model
	// provider. Off, the deterministic rubric-coverage grader is used.
	UseLLM bool
}

// App is the wired engine plus the resources it owns.
type App struct {
	Engine *assessment.Engine
	Bank   []catalog.Item

	st *store.Store
}

// Build loads the item bank, opens storage and wires the engine.
func Build(ctx context.Context, opts Options) (*App, error) {
	var bank []catalog.Item
	var err error
	if opts.BankPath != "" {
		bank, err = catalog.LoadBank(opts.BankPath)
	} else {
		bank, err = catalog.DefaultBank()
	}
	if err != nil {
		return nil, fmt.Errorf("loading item bank: %w", err)
	}
	source := catalog.NewMemorySource(bank)

	a := &App{Bank: bank}

	var sessions store.SessionRepo
	var events store.EventRepo
	var snapshots store.SnapshotRepo
	if opts.DBPath != "" {
		st, err := store.Open(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		a.st = st
		sessions = st.SessionRepo()
		events = st.EventRepo()
		snapshots = st.SnapshotRepo()
	}

	var subjective grader.SubjectiveGrader
	if opts.UseLLM {
		provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), events)
		if err != nil {
			return nil, fmt.Errorf("configuring model provider: %w", err)
		}
		subjective = grader.NewLLMGrader(provider, grader.DefaultLLMConfig())
	} else {
		subjective = grader.NewRuleBased()
	}

	order := opts.FixedOrder
	if len(order) == 0 {
		order = bankOrder(bank)
	}
	selectors := map[assessment.Mode]assessment.ItemSelector{
		assessment.ModeAdaptive:   selector.NewAdaptive(source, selector.DefaultConfig()),
		assessment.ModeFixedBlock: selector.NewFixedBlock(source, order),
	}

	a.Engine = assessment.NewEngine(assessment.Deps{
		Scorer:    scoring.NewEngine(scoring.DefaultConfig()),
		Grader:    grader.New(subjective, grader.DefaultConfig()),
		Evaluator: convergence.NewEvaluator(convergence.DefaultConfig()),
		Selectors: selectors,
		Sessions:  sessions,
		Events:    events,
		Snapshots: snapshots,
		Recommend: recommend.DefaultConfig(),
	})
	return a, nil
}

// Store exposes the underlying store, or nil when persistence is off.
func (a *App) Store() *store.Store {
	return a.st
}

// Close releases the app's resources.
func (a *App) Close() error {
	if a.st != nil {
		return a.st.Close()
	}
	return nil
}

func bankOrder(bank []catalog.Item) []string {
	ids := make([]string, 0, len(bank))
	for _, it := range bank {
		ids = append(ids, it.ID)
	}
	sort.Strings(ids)
	return ids
}
