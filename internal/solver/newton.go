package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Newton is a damped Newton-Raphson root-finder: full Newton direction
// from a numerical Jacobian, step length halved until the residual
// norm decreases. Requires a square system.
type Newton struct {
	opts Options
}

func NewNewton(opts Options) *Newton {
	return &Newton{opts: opts.withDefaults()}
}

func (n *Newton) Solve(f Func, x0 []float64) (Solution, error) {
	x := make([]float64, len(x0))
	copy(x, x0)

	fx := f(x)
	if !allFinite(fx) {
		return Solution{}, ErrBadGuess
	}
	if len(fx) != len(x) {
		return Solution{}, fmt.Errorf("%w: %d equations, %d unknowns", ErrDimension, len(fx), len(x))
	}

	dim := len(x)
	jac := mat.NewDense(dim, dim, nil)
	neg := mat.NewVecDense(dim, nil)
	var step mat.VecDense
	trial := make([]float64, dim)

	for it := 0; it < n.opts.MaxIterations; it++ {
		norm := floats.Norm(fx, math.Inf(1))
		if norm <= n.opts.Tolerance {
			return Solution{X: x, Residual: norm, Iterations: it}, nil
		}

		jacobian(f, x, fx, jac)
		for i, v := range fx {
			neg.SetVec(i, -v)
		}
		if err := step.SolveVec(jac, neg); err != nil {
			return Solution{}, fmt.Errorf("%w at iteration %d", ErrSingular, it)
		}

		// Backtrack until the squared residual improves.
		sum2 := floats.Dot(fx, fx)
		alpha := 1.0
		accepted := false
		for k := 0; k < 40; k++ {
			for i := range x {
				trial[i] = x[i] + alpha*step.AtVec(i)
			}
			ft := f(trial)
			if allFinite(ft) && floats.Dot(ft, ft) < sum2 {
				copy(x, trial)
				fx = ft
				accepted = true
				break
			}
			alpha /= 2
		}
		if !accepted {
			return Solution{}, fmt.Errorf("%w: line search stalled, residual %g", ErrNoConvergence, norm)
		}
		if alpha*step.Norm(2) < n.opts.StepTolerance {
			norm = floats.Norm(fx, math.Inf(1))
			if norm <= n.opts.Tolerance {
				return Solution{X: x, Residual: norm, Iterations: it + 1}, nil
			}
			return Solution{}, fmt.Errorf("%w: step below %g, residual %g", ErrNoConvergence, n.opts.StepTolerance, norm)
		}
	}

	return Solution{}, fmt.Errorf("%w after %d iterations, residual %g",
		ErrNoConvergence, n.opts.MaxIterations, floats.Norm(fx, math.Inf(1)))
}
