package chem

import (
	"fmt"
	"math"
)

// Term is one species in a reaction with its signed stoichiometric
// coefficient: negative for reactants, positive for products.
type Term struct {
	Species     *Species
	Coefficient int
}

// Reaction is a reversible reaction with a strictly positive
// equilibrium constant. Terms keep their construction order so that
// systems built from the same reactions enumerate species identically
// run to run. Immutable after construction.
type Reaction struct {
	terms []Term
	coeff map[*Species]int
	k     float64
	pk    float64
}

// NewReaction validates and builds a reaction. The constant must be
// positive and finite, every coefficient nonzero, and no species may
// appear twice.
func NewReaction(k float64, terms ...Term) (*Reaction, error) {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrNonPositiveConstant, k)
	}
	if len(terms) == 0 {
		return nil, ErrEmptyReaction
	}
	r := &Reaction{
		terms: make([]Term, 0, len(terms)),
		coeff: make(map[*Species]int, len(terms)),
		k:     k,
		pk:    -math.Log10(k),
	}
	for _, t := range terms {
		if t.Species == nil {
			return nil, ErrNilSpecies
		}
		if t.Coefficient == 0 {
			return nil, fmt.Errorf("%w: species %s", ErrZeroCoefficient, t.Species.Name)
		}
		if _, ok := r.coeff[t.Species]; ok {
			return nil, fmt.Errorf("%w: species %s", ErrDuplicateSpecies, t.Species.Name)
		}
		r.coeff[t.Species] = t.Coefficient
		r.terms = append(r.terms, t)
	}
	return r, nil
}

// Terms returns the reaction terms in construction order.
func (r *Reaction) Terms() []Term {
	out := make([]Term, len(r.terms))
	copy(out, r.terms)
	return out
}

// Coefficient returns the signed coefficient of s, or 0 when s does
// not take part in the reaction.
func (r *Reaction) Coefficient(s *Species) int {
	return r.coeff[s]
}

// EquilibriumConstant returns K.
func (r *Reaction) EquilibriumConstant() float64 { return r.k }

// PK returns -log10(K), the form the residual equations use.
func (r *Reaction) PK() float64 { return r.pk }

// NumSpecies returns the number of distinct species in the reaction.
func (r *Reaction) NumSpecies() int { return len(r.terms) }
