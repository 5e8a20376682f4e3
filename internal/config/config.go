package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pedrodamas1/chemeq/internal/chem"
	"github.com/pedrodamas1/chemeq/internal/equilib"
	"github.com/pedrodamas1/chemeq/internal/solver"
)

const (
	DefaultSolver        = "lm"
	DefaultMaxIterations = 200
	DefaultTolerance     = 1e-9
)

// Config is a whole equilibrium system as declared in YAML. Species
// are listed explicitly, and reaction terms reference them by name, so
// the file fixes the enumeration order the matrices use.
type Config struct {
	Name         string             `yaml:"name"`
	Species      []SpeciesConfig    `yaml:"species"`
	Reactions    []ReactionConfig   `yaml:"reactions"`
	Conservation []ConstraintConfig `yaml:"conservation"`
	Solver       SolverConfig       `yaml:"solver"`
}

type SpeciesConfig struct {
	Name   string   `yaml:"name"`
	Charge int      `yaml:"charge"`
	Groups []string `yaml:"groups,omitempty"`
}

type ReactionConfig struct {
	K       float64        `yaml:"equilibrium_constant"`
	Species map[string]int `yaml:"species"`
}

type ConstraintConfig struct {
	Token  string  `yaml:"token"`
	Target float64 `yaml:"target"`
}

type SolverConfig struct {
	Method        string  `yaml:"method"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// DefaultConfig returns the acetic acid system, the canonical worked
// example.
func DefaultConfig() *Config {
	return Preset("acetic-acid")
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyDefaults() {
	if c.Solver.Method == "" {
		c.Solver.Method = DefaultSolver
	}
	if c.Solver.MaxIterations <= 0 {
		c.Solver.MaxIterations = DefaultMaxIterations
	}
	if c.Solver.Tolerance <= 0 {
		c.Solver.Tolerance = DefaultTolerance
	}
}

// SolverOptions converts the solver block to solver.Options.
func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		MaxIterations: c.Solver.MaxIterations,
		Tolerance:     c.Solver.Tolerance,
	}
}

// Build instantiates the species, reactions, and system. The returned
// map gives the caller handles onto the live species, whose
// Concentration fields a successful solve fills in. Reaction terms are
// ordered by species declaration order, so matrix layout is stable for
// a given file.
func (c *Config) Build(finder solver.RootFinder) (*equilib.System, map[string]*chem.Species, error) {
	if len(c.Species) == 0 {
		return nil, nil, fmt.Errorf("config %q: no species declared", c.Name)
	}

	species := make(map[string]*chem.Species, len(c.Species))
	for _, sc := range c.Species {
		if _, ok := species[sc.Name]; ok {
			return nil, nil, fmt.Errorf("config %q: species %s declared twice", c.Name, sc.Name)
		}
		species[sc.Name] = chem.New(sc.Name, sc.Charge, sc.Groups...)
	}

	reactions := make([]*chem.Reaction, 0, len(c.Reactions))
	for i, rc := range c.Reactions {
		for name := range rc.Species {
			if _, ok := species[name]; !ok {
				return nil, nil, fmt.Errorf("config %q: reaction %d references undeclared species %s", c.Name, i, name)
			}
		}
		terms := make([]chem.Term, 0, len(rc.Species))
		for _, sc := range c.Species {
			if coeff, ok := rc.Species[sc.Name]; ok {
				terms = append(terms, chem.Term{Species: species[sc.Name], Coefficient: coeff})
			}
		}
		rxn, err := chem.NewReaction(rc.K, terms...)
		if err != nil {
			return nil, nil, fmt.Errorf("config %q: reaction %d: %w", c.Name, i, err)
		}
		reactions = append(reactions, rxn)
	}

	constraints := make([]equilib.Constraint, 0, len(c.Conservation))
	for _, cc := range c.Conservation {
		constraints = append(constraints, equilib.Constraint{Token: cc.Token, Target: cc.Target})
	}

	sys, err := equilib.New(reactions, constraints, finder)
	if err != nil {
		return nil, nil, fmt.Errorf("config %q: %w", c.Name, err)
	}
	return sys, species, nil
}
