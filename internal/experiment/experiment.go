package experiment

import (
	"github.com/pedrodamas1/chemeq/internal/chem"
	"github.com/pedrodamas1/chemeq/internal/config"
	"github.com/pedrodamas1/chemeq/internal/equilib"
	"github.com/pedrodamas1/chemeq/internal/solver"
)

// Experiment binds a system definition to a live, solvable system.
type Experiment struct {
	cfg     *config.Config
	sys     *equilib.System
	species map[string]*chem.Species
}

func New(cfg *config.Config, finder solver.RootFinder) (*Experiment, error) {
	sys, species, err := cfg.Build(finder)
	if err != nil {
		return nil, err
	}
	return &Experiment{cfg: cfg, sys: sys, species: species}, nil
}

// Solve runs one solve from the default guess.
func (e *Experiment) Solve() (*equilib.Result, error) {
	return e.sys.Solve(nil)
}

// System exposes the underlying system for target retuning and
// continuation solves.
func (e *Experiment) System() *equilib.System { return e.sys }

// SpeciesByName returns the live species handle, or nil.
func (e *Experiment) SpeciesByName(name string) *chem.Species {
	return e.species[name]
}

// Config returns the definition the experiment was built from.
func (e *Experiment) Config() *config.Config { return e.cfg }
