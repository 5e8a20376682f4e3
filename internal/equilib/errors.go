package equilib

import (
	"errors"
	"fmt"
)

// Domain errors for system construction and solving.
var (
	// ErrNoReactions indicates a system built without any reaction.
	ErrNoReactions = errors.New("equilib: system needs at least one reaction")

	// ErrUnknownConstraint indicates a constraint token the system does
	// not carry.
	ErrUnknownConstraint = errors.New("equilib: no such conservation constraint")

	// ErrDanglingConstraint indicates a constraint no species in the
	// universe contributes to.
	ErrDanglingConstraint = errors.New("equilib: constraint matches no species")

	// ErrBadGuess indicates an initial guess with the wrong length or a
	// non-positive concentration.
	ErrBadGuess = errors.New("equilib: invalid initial guess")

	// ErrBadRamp indicates continuation parameters that cannot form a
	// ramp.
	ErrBadRamp = errors.New("equilib: ramp needs at least one step")
)

// DimensionError reports an under- or over-determined system: the
// species count must equal reactions plus constraints plus one (the
// charge-balance row). The model has to change before a solve can be
// attempted; there is no recovery path here.
type DimensionError struct {
	Unknowns  int // species in the universe
	Equations int // reactions + constraints + 1
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("equilib: %d unknown concentrations but %d equations; add or remove a reaction or constraint",
		e.Unknowns, e.Equations)
}
