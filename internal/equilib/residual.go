package equilib

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/pedrodamas1/chemeq/internal/solver"
)

// residual builds the function handed to the root-finder. The argument
// is one log10 concentration per species in universe order; the output
// concatenates the mass-action rows, the conservation rows, and the
// single charge-balance row, in that order. The closure reads matrices
// and constraint targets from the system but never writes: species
// state only changes after a converged solve.
func (s *System) residual() solver.Func {
	nRxn := len(s.reactions)
	nCon := len(s.constraints)
	nSpec := len(s.species)

	return func(logc []float64) []float64 {
		out := make([]float64, nRxn+nCon+1)

		conc := make([]float64, nSpec)
		for j, lc := range logc {
			conc[j] = math.Pow(10, lc)
		}

		// Mass action: pK + M * log10(c).
		var eq mat.VecDense
		eq.MulVec(s.stoich, mat.NewVecDense(nSpec, logc))
		for i := 0; i < nRxn; i++ {
			out[i] = s.pk[i] + eq.AtVec(i)
		}

		// Conservation: target - C * c, in linear concentrations.
		if nCon > 0 {
			var tot mat.VecDense
			tot.MulVec(s.conserv, mat.NewVecDense(nSpec, conc))
			for i, c := range s.constraints {
				out[nRxn+i] = c.Target - tot.AtVec(i)
			}
		}

		// Electroneutrality.
		net := 0.0
		for j, c := range conc {
			net += s.charge[j] * c
		}
		out[nRxn+nCon] = net

		return out
	}
}
