package chem

import "math"

// Species is a single dissolved chemical entity.
//
// Charge is the formal charge in elementary units. Groups lists the
// conserved fragments this species contributes to; a species with no
// groups never enters a conservation total. Concentration is in molar
// and is written only by a successful equilibrium solve; before that
// it is zero and carries no meaning.
type Species struct {
	Name          string
	Charge        int
	Groups        []string
	Concentration float64
}

// New constructs a species with zero initial concentration.
func New(name string, charge int, groups ...string) *Species {
	return &Species{Name: name, Charge: charge, Groups: groups}
}

// Conserves reports whether the species contributes to the conserved
// fragment token.
func (s *Species) Conserves(token string) bool {
	for _, g := range s.Groups {
		if g == token {
			return true
		}
	}
	return false
}

func (s *Species) String() string { return s.Name }

// PH converts a hydron concentration in molar to pH.
func PH(concentration float64) float64 {
	return -math.Log10(concentration)
}
