package solver

import "errors"

// Func evaluates a residual vector at x. Implementations must be pure:
// no side effects, re-evaluable at any point, including extreme ones.
// The returned slice must not alias earlier returns.
type Func func(x []float64) []float64

// Options bound the work a root-finder may do.
type Options struct {
	// MaxIterations caps outer iterations.
	MaxIterations int
	// Tolerance is the convergence threshold on the residual
	// infinity norm.
	Tolerance float64
	// StepTolerance declares a stall: when the accepted step drops
	// below it without the residual meeting Tolerance, the solve
	// fails rather than looping.
	StepTolerance float64
}

// DefaultOptions returns the bounds used throughout the examples.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 200,
		Tolerance:     1e-9,
		StepTolerance: 1e-13,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	if o.StepTolerance <= 0 {
		o.StepTolerance = d.StepTolerance
	}
	return o
}

// Solution is a converged root.
type Solution struct {
	X          []float64
	Residual   float64 // infinity norm of f at X
	Iterations int
}

// RootFinder finds x such that f(x) = 0 starting from x0.
type RootFinder interface {
	Solve(f Func, x0 []float64) (Solution, error)
}

// Solver failure modes. Non-convergence is an expected outcome, not a
// programming error; callers branch on it with errors.Is.
var (
	// ErrNoConvergence indicates the iteration budget or step size was
	// exhausted before the residual met the tolerance.
	ErrNoConvergence = errors.New("solver: did not converge")

	// ErrSingular indicates a linear solve against a singular system.
	ErrSingular = errors.New("solver: singular jacobian")

	// ErrBadGuess indicates a starting point at which the residual is
	// not finite.
	ErrBadGuess = errors.New("solver: residual not finite at initial guess")

	// ErrDimension indicates a residual whose length cannot determine
	// the unknowns (Newton requires a square system).
	ErrDimension = errors.New("solver: residual and unknown dimensions incompatible")
)
