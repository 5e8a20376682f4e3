package equilib

import (
	"github.com/pedrodamas1/chemeq/internal/chem"
)

// Result is the output record of one converged solve: concentrations
// in universe order plus solver diagnostics. It is a snapshot; later
// solves do not mutate it.
type Result struct {
	Species        []*chem.Species
	Concentrations []float64
	Residual       float64
	Iterations     int
}

// Concentration looks a species up by name.
func (r *Result) Concentration(name string) (float64, bool) {
	for i, sp := range r.Species {
		if sp.Name == name {
			return r.Concentrations[i], true
		}
	}
	return 0, false
}

// PH returns the pH when the system contains the hydron species H+.
func (r *Result) PH() (float64, bool) {
	c, ok := r.Concentration("H+")
	if !ok {
		return 0, false
	}
	return chem.PH(c), true
}
