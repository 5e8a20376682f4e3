package experiment

import (
	"fmt"

	"github.com/pedrodamas1/chemeq/internal/equilib"
)

// Titration sweeps one conservation target across a range, resolving
// the system at every point with the previous point's concentrations
// as the initial guess.
type Titration struct {
	Token  string
	From   float64
	To     float64
	Points int // number of solved points, at least 2
}

// TitrationResult holds the swept curve. Slices share indexing:
// Targets[i] produced PH[i] and Concentrations[i] (universe order).
type TitrationResult struct {
	Token          string
	Targets        []float64
	PH             []float64
	Concentrations [][]float64
}

// PointError names the sweep point at which a continuation solve
// failed.
type PointError struct {
	Point   int
	Target  float64
	Wrapped error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("titration point %d (target %g): %v", e.Point, e.Target, e.Wrapped)
}

func (e *PointError) Unwrap() error { return e.Wrapped }

// Run executes the sweep. The first point solves from the crude
// default guess, so From should be a value the system converges to
// directly; every later point is seeded by its predecessor. The sweep
// aborts at the first failed point.
func (e *Experiment) Run(t Titration) (*TitrationResult, error) {
	if t.Points < 2 {
		return nil, fmt.Errorf("titration needs at least 2 points, got %d", t.Points)
	}
	if _, ok := e.sys.Target(t.Token); !ok {
		return nil, fmt.Errorf("titration: %w: %s", equilib.ErrUnknownConstraint, t.Token)
	}

	res := &TitrationResult{
		Token:          t.Token,
		Targets:        make([]float64, 0, t.Points),
		PH:             make([]float64, 0, t.Points),
		Concentrations: make([][]float64, 0, t.Points),
	}

	var guess []float64
	for k := 0; k < t.Points; k++ {
		target := t.From + (t.To-t.From)*float64(k)/float64(t.Points-1)
		if err := e.sys.SetTarget(t.Token, target); err != nil {
			return nil, err
		}
		r, err := e.sys.Solve(guess)
		if err != nil {
			return nil, &PointError{Point: k, Target: target, Wrapped: err}
		}
		ph, _ := r.PH()
		res.Targets = append(res.Targets, target)
		res.PH = append(res.PH, ph)
		res.Concentrations = append(res.Concentrations, r.Concentrations)
		guess = r.Concentrations
	}

	return res, nil
}
