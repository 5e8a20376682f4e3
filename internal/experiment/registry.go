package experiment

import (
	"fmt"
	"sort"

	"github.com/pedrodamas1/chemeq/internal/config"
	"github.com/pedrodamas1/chemeq/internal/solver"
)

// Registry maps names to system definitions and root-finder
// constructors, so the CLI and tests resolve both from strings.
type Registry struct {
	solvers map[string]func(solver.Options) solver.RootFinder
}

func NewRegistry() *Registry {
	r := &Registry{
		solvers: make(map[string]func(solver.Options) solver.RootFinder),
	}

	r.solvers["lm"] = func(opts solver.Options) solver.RootFinder {
		return solver.NewLevenbergMarquardt(opts)
	}
	r.solvers["newton"] = func(opts solver.Options) solver.RootFinder {
		return solver.NewNewton(opts)
	}

	return r
}

// GetSystem returns a fresh config for a built-in system.
func (r *Registry) GetSystem(name string) (*config.Config, error) {
	cfg := config.Preset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown system: %s (available: %v)", name, r.ListSystems())
	}
	return cfg, nil
}

// GetSolver builds a named root-finder with the given options.
func (r *Registry) GetSolver(name string, opts solver.Options) (solver.RootFinder, error) {
	fn, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s (available: %v)", name, r.ListSolvers())
	}
	return fn(opts), nil
}

func (r *Registry) ListSystems() []string {
	names := config.ListPresets()
	sort.Strings(names)
	return names
}

func (r *Registry) ListSolvers() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
