package chem

import "errors"

// Domain errors for reaction construction.
var (
	// ErrNonPositiveConstant indicates an equilibrium constant that is
	// zero, negative, or not finite.
	ErrNonPositiveConstant = errors.New("chem: equilibrium constant must be positive and finite")

	// ErrZeroCoefficient indicates a stoichiometric coefficient of zero.
	ErrZeroCoefficient = errors.New("chem: stoichiometric coefficient must be nonzero")

	// ErrNilSpecies indicates a term without a species.
	ErrNilSpecies = errors.New("chem: reaction term has no species")

	// ErrDuplicateSpecies indicates a species listed twice in one reaction.
	ErrDuplicateSpecies = errors.New("chem: species appears twice in one reaction")

	// ErrEmptyReaction indicates a reaction with no terms.
	ErrEmptyReaction = errors.New("chem: reaction must have at least one species")
)
