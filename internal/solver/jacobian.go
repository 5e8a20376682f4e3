package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// jacobian fills dst with forward differences of f at x. fx is the
// already-computed residual at x so f is called once per column.
func jacobian(f Func, x, fx []float64, dst *mat.Dense) {
	xh := make([]float64, len(x))
	copy(xh, x)
	for j := range x {
		h := 1.5e-8 * (math.Abs(x[j]) + 1)
		xh[j] = x[j] + h
		fh := f(xh)
		for i := range fx {
			dst.Set(i, j, (fh[i]-fx[i])/h)
		}
		xh[j] = x[j]
	}
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
