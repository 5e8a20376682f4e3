package chem

import (
	"errors"
	"math"
	"testing"
)

func TestNewReactionValid(t *testing.T) {
	h := New("H+", 1)
	oh := New("OH-", -1)

	r, err := NewReaction(1.0e-14, Term{oh, 1}, Term{h, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.EquilibriumConstant() != 1.0e-14 {
		t.Errorf("expected K 1e-14, got %g", r.EquilibriumConstant())
	}
	if math.Abs(r.PK()-14) > 1e-12 {
		t.Errorf("expected pK 14, got %f", r.PK())
	}
	if r.Coefficient(h) != 1 || r.Coefficient(oh) != 1 {
		t.Error("coefficients not preserved")
	}
	if r.NumSpecies() != 2 {
		t.Errorf("expected 2 species, got %d", r.NumSpecies())
	}
}

func TestNewReactionErrors(t *testing.T) {
	h := New("H+", 1)
	oh := New("OH-", -1)

	tests := []struct {
		name  string
		k     float64
		terms []Term
		want  error
	}{
		{"zero constant", 0, []Term{{h, 1}}, ErrNonPositiveConstant},
		{"negative constant", -1e-5, []Term{{h, 1}}, ErrNonPositiveConstant},
		{"nan constant", math.NaN(), []Term{{h, 1}}, ErrNonPositiveConstant},
		{"inf constant", math.Inf(1), []Term{{h, 1}}, ErrNonPositiveConstant},
		{"no terms", 1e-5, nil, ErrEmptyReaction},
		{"zero coefficient", 1e-5, []Term{{h, 0}}, ErrZeroCoefficient},
		{"nil species", 1e-5, []Term{{nil, 1}}, ErrNilSpecies},
		{"duplicate species", 1e-5, []Term{{h, -1}, {oh, 1}, {h, 1}}, ErrDuplicateSpecies},
	}

	for _, tt := range tests {
		_, err := NewReaction(tt.k, tt.terms...)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestReactionCoefficientAbsent(t *testing.T) {
	h := New("H+", 1)
	other := New("Cl-", -1)

	r, err := NewReaction(1e-5, Term{h, 1})
	if err != nil {
		t.Fatal(err)
	}
	if r.Coefficient(other) != 0 {
		t.Error("absent species should report coefficient 0")
	}
}

func TestReactionTermsOrder(t *testing.T) {
	a := New("A", 0)
	b := New("B", 1)
	c := New("C", -1)

	r, err := NewReaction(2.5, Term{a, -1}, Term{b, 1}, Term{c, 1})
	if err != nil {
		t.Fatal(err)
	}
	terms := r.Terms()
	want := []*Species{a, b, c}
	for i, sp := range want {
		if terms[i].Species != sp {
			t.Fatalf("term %d: expected %s, got %s", i, sp.Name, terms[i].Species.Name)
		}
	}

	// Terms returns a copy.
	terms[0].Coefficient = 99
	if r.Terms()[0].Coefficient != -1 {
		t.Error("mutating the returned slice must not affect the reaction")
	}
}
