package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LevenbergMarquardt interpolates between Gauss-Newton and gradient
// descent with an adaptive damping factor. It accepts rectangular
// systems (more equations than unknowns) and is the default finder:
// the crude all-ones starting guess equilibrium solves begin from is
// routinely far from the root.
type LevenbergMarquardt struct {
	opts Options
}

func NewLevenbergMarquardt(opts Options) *LevenbergMarquardt {
	return &LevenbergMarquardt{opts: opts.withDefaults()}
}

func (l *LevenbergMarquardt) Solve(f Func, x0 []float64) (Solution, error) {
	x := make([]float64, len(x0))
	copy(x, x0)

	fx := f(x)
	if !allFinite(fx) {
		return Solution{}, ErrBadGuess
	}
	rows, cols := len(fx), len(x)
	if rows < cols {
		return Solution{}, fmt.Errorf("%w: %d equations, %d unknowns", ErrDimension, rows, cols)
	}

	jac := mat.NewDense(rows, cols, nil)
	normal := mat.NewDense(cols, cols, nil)
	damped := mat.NewDense(cols, cols, nil)
	grad := mat.NewVecDense(cols, nil)
	var step mat.VecDense
	trial := make([]float64, cols)

	lambda := 1e-3

	for it := 0; it < l.opts.MaxIterations; it++ {
		norm := floats.Norm(fx, math.Inf(1))
		if norm <= l.opts.Tolerance {
			return Solution{X: x, Residual: norm, Iterations: it}, nil
		}

		jacobian(f, x, fx, jac)
		normal.Mul(jac.T(), jac)
		grad.MulVec(jac.T(), mat.NewVecDense(rows, fx))
		grad.ScaleVec(-1, grad)

		sum2 := floats.Dot(fx, fx)
		accepted := false
		for lambda <= 1e14 {
			damped.Copy(normal)
			for i := 0; i < cols; i++ {
				d := normal.At(i, i)
				if d < 1e-12 {
					d = 1e-12
				}
				damped.Set(i, i, normal.At(i, i)+lambda*d)
			}
			if err := step.SolveVec(damped, grad); err != nil {
				lambda *= 10
				continue
			}
			for i := range x {
				trial[i] = x[i] + step.AtVec(i)
			}
			ft := f(trial)
			if allFinite(ft) && floats.Dot(ft, ft) < sum2 {
				copy(x, trial)
				fx = ft
				lambda = math.Max(lambda*0.3, 1e-12)
				accepted = true
				break
			}
			lambda *= 10
		}
		if !accepted {
			return Solution{}, fmt.Errorf("%w: damping exhausted, residual %g", ErrNoConvergence, norm)
		}
		if step.Norm(2) < l.opts.StepTolerance {
			norm = floats.Norm(fx, math.Inf(1))
			if norm <= l.opts.Tolerance {
				return Solution{X: x, Residual: norm, Iterations: it + 1}, nil
			}
			return Solution{}, fmt.Errorf("%w: step below %g, residual %g", ErrNoConvergence, l.opts.StepTolerance, norm)
		}
	}

	return Solution{}, fmt.Errorf("%w after %d iterations, residual %g",
		ErrNoConvergence, l.opts.MaxIterations, floats.Norm(fx, math.Inf(1)))
}
