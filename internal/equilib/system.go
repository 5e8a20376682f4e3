package equilib

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/pedrodamas1/chemeq/internal/chem"
	"github.com/pedrodamas1/chemeq/internal/solver"
)

// Constraint pins the total concentration of every species that
// declares the conserved Token to Target molar.
type Constraint struct {
	Token  string
	Target float64
}

// System is an equilibrium problem: reactions, conservation
// constraints, and the derived matrices over the species universe.
type System struct {
	reactions   []*chem.Reaction
	constraints []Constraint

	species []*chem.Species // universe, first-appearance order
	index   map[*chem.Species]int

	stoich  *mat.Dense // reactions x species, signed coefficients
	conserv *mat.Dense // constraints x species, 0/1 membership; nil when no constraints
	charge  []float64  // per species, universe order
	pk      []float64  // per reaction, -log10(K)

	finder solver.RootFinder
}

// New derives the species universe from the reactions, verifies the
// system is square (species = reactions + constraints + 1), and builds
// the matrices. finder may be nil, which selects Levenberg-Marquardt
// with default options.
func New(reactions []*chem.Reaction, constraints []Constraint, finder solver.RootFinder) (*System, error) {
	if len(reactions) == 0 {
		return nil, ErrNoReactions
	}
	if finder == nil {
		finder = solver.NewLevenbergMarquardt(solver.DefaultOptions())
	}

	s := &System{
		reactions:   reactions,
		constraints: append([]Constraint(nil), constraints...),
		index:       make(map[*chem.Species]int),
		finder:      finder,
	}
	for _, r := range reactions {
		for _, t := range r.Terms() {
			if _, ok := s.index[t.Species]; !ok {
				s.index[t.Species] = len(s.species)
				s.species = append(s.species, t.Species)
			}
		}
	}

	unknowns := len(s.species)
	equations := len(reactions) + len(constraints) + 1
	if unknowns != equations {
		return nil, &DimensionError{Unknowns: unknowns, Equations: equations}
	}

	s.stoich = mat.NewDense(len(reactions), unknowns, nil)
	s.pk = make([]float64, len(reactions))
	for i, r := range reactions {
		s.pk[i] = r.PK()
		for _, t := range r.Terms() {
			s.stoich.Set(i, s.index[t.Species], float64(t.Coefficient))
		}
	}

	if len(constraints) > 0 {
		s.conserv = mat.NewDense(len(constraints), unknowns, nil)
		for i, c := range constraints {
			matched := false
			for j, sp := range s.species {
				if sp.Conserves(c.Token) {
					s.conserv.Set(i, j, 1)
					matched = true
				}
			}
			if !matched {
				return nil, fmt.Errorf("%w: %s", ErrDanglingConstraint, c.Token)
			}
		}
	}

	s.charge = make([]float64, unknowns)
	for j, sp := range s.species {
		s.charge[j] = float64(sp.Charge)
	}

	return s, nil
}

// Species returns the universe in its stable enumeration order, the
// order matrix columns, guesses, and result vectors all share.
func (s *System) Species() []*chem.Species {
	out := make([]*chem.Species, len(s.species))
	copy(out, s.species)
	return out
}

// Constraints returns the conservation constraints in row order.
func (s *System) Constraints() []Constraint {
	out := make([]Constraint, len(s.constraints))
	copy(out, s.constraints)
	return out
}

// StoichiometricMatrix returns the reactions-by-species coefficient
// matrix.
func (s *System) StoichiometricMatrix() mat.Matrix { return s.stoich }

// ConservationMatrix returns the constraints-by-species membership
// matrix, or nil when the system has no constraints.
func (s *System) ConservationMatrix() mat.Matrix {
	if s.conserv == nil {
		return nil
	}
	return s.conserv
}

// Charges returns the formal charge of each species in universe order.
func (s *System) Charges() []float64 {
	out := make([]float64, len(s.charge))
	copy(out, s.charge)
	return out
}

// Target returns the current target of the named constraint.
func (s *System) Target(token string) (float64, bool) {
	for _, c := range s.constraints {
		if c.Token == token {
			return c.Target, true
		}
	}
	return 0, false
}

// SetTarget retunes a conservation target, e.g. between the solves of
// a titration sweep. The matrices are unaffected.
func (s *System) SetTarget(token string, target float64) error {
	for i := range s.constraints {
		if s.constraints[i].Token == token {
			s.constraints[i].Target = target
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownConstraint, token)
}

// Solve finds the equilibrium concentrations. guess, when non-nil,
// supplies one positive molar concentration per species in universe
// order; nil defaults to 1.0 M everywhere, a deliberately crude start
// the default finder tolerates. On success every species'
// Concentration is updated and a result record returned; on failure
// the species are left untouched and the error wraps
// solver.ErrNoConvergence.
func (s *System) Solve(guess []float64) (*Result, error) {
	x0 := make([]float64, len(s.species))
	if guess != nil {
		if len(guess) != len(s.species) {
			return nil, fmt.Errorf("%w: %d values for %d species", ErrBadGuess, len(guess), len(s.species))
		}
		for i, g := range guess {
			if g <= 0 || math.IsNaN(g) || math.IsInf(g, 0) {
				return nil, fmt.Errorf("%w: species %s: %g", ErrBadGuess, s.species[i].Name, g)
			}
			x0[i] = math.Log10(g)
		}
	}

	sol, err := s.finder.Solve(s.residual(), x0)
	if err != nil {
		return nil, err
	}

	conc := make([]float64, len(sol.X))
	for i, lx := range sol.X {
		conc[i] = math.Pow(10, lx)
	}
	for i, sp := range s.species {
		sp.Concentration = conc[i]
	}
	return &Result{
		Species:        s.Species(),
		Concentrations: conc,
		Residual:       sol.Residual,
		Iterations:     sol.Iterations,
	}, nil
}

// BruteSolve reaches a conservation target unreachable from the crude
// default guess by continuation: the named constraint ramps from low
// to high in steps increments, each solve seeded with the previous
// converged concentrations. The constraint is left at high on success;
// on any intermediate failure the ramp aborts, the original target is
// restored, and the step that failed is named in the error.
func (s *System) BruteSolve(token string, low, high float64, steps int) (*Result, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRamp, steps)
	}
	if _, ok := s.Target(token); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConstraint, token)
	}

	orig, _ := s.Target(token)
	var guess []float64
	var res *Result
	for k := 0; k <= steps; k++ {
		target := low + (high-low)*float64(k)/float64(steps)
		if err := s.SetTarget(token, target); err != nil {
			return nil, err
		}
		r, err := s.Solve(guess)
		if err != nil {
			s.SetTarget(token, orig)
			return nil, fmt.Errorf("equilib: ramp step %d of %d (%s=%g): %w", k, steps, token, target, err)
		}
		res = r
		guess = r.Concentrations
	}
	return res, nil
}
